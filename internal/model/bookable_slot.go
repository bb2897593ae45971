package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookableSlot is a derived 1-hour interval a student can book. Slots are
// recomputed on every read from the teacher's rules and commitments, never
// persisted.
type BookableSlot struct {
	TeacherID uuid.UUID `json:"teacher_id"`
	Date      time.Time `json:"date"`
	Start     TimeOfDay `json:"start_time"`
	End       TimeOfDay `json:"end_time"`
}

// Label renders the slot the way the booking calendar displays it.
func (s BookableSlot) Label() string {
	return fmt.Sprintf("%s - %s", s.Start, s.End)
}
