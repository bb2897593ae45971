package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassScheduleEntry is a recurring weekly commitment binding a teacher to
// a class and subject, independent of individual student appointments.
type ClassScheduleEntry struct {
	ID        uuid.UUID `json:"id"`
	ClassID   uuid.UUID `json:"class_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	TeacherID uuid.UUID `json:"teacher_id"`
	DayOfWeek int       `json:"day_of_week"` // 0 = Sunday, 6 = Saturday
	Start     TimeOfDay `json:"start_time"`
	End       TimeOfDay `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the entry's structural invariants.
func (e *ClassScheduleEntry) Validate() error {
	if e.ClassID == uuid.Nil || e.SubjectID == uuid.Nil || e.TeacherID == uuid.Nil {
		return Validationf("class, subject and teacher are required")
	}
	if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
		return Validationf("day of week must be between 0 and 6")
	}
	if !e.Start.Valid() || !e.End.Valid() {
		return Validationf("time window out of range")
	}
	if e.Start >= e.End {
		return Validationf("start time must be before end time")
	}
	return nil
}
