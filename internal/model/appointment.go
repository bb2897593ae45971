package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentScheduled          AppointmentStatus = "scheduled"
	AppointmentConfirmed          AppointmentStatus = "confirmed"
	AppointmentCompleted          AppointmentStatus = "completed"
	AppointmentCancelledByStudent AppointmentStatus = "cancelled_by_student"
	AppointmentCancelledByTeacher AppointmentStatus = "cancelled_by_teacher"
)

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted,
		AppointmentCancelledByStudent, AppointmentCancelledByTeacher:
		return true
	}
	return false
}

// IsCancelled reports whether s is one of the cancelled states.
func (s AppointmentStatus) IsCancelled() bool {
	return s == AppointmentCancelledByStudent || s == AppointmentCancelledByTeacher
}

// IsTerminal reports whether s permits no further transitions.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s.IsCancelled()
}

// BlocksSlot reports whether an appointment in this status holds its time
// slot. Cancelled appointments release the slot immediately.
func (s AppointmentStatus) BlocksSlot() bool {
	return s == AppointmentScheduled || s == AppointmentConfirmed
}

// Appointment is a committed booking between one student and one teacher
// for one subject at a specific date and time. Appointments are never
// physically deleted: the status encodes finality.
type Appointment struct {
	ID        uuid.UUID         `json:"id"`
	TeacherID uuid.UUID         `json:"teacher_id"`
	StudentID uuid.UUID         `json:"student_id"`
	SubjectID uuid.UUID         `json:"subject_id"`
	Date      time.Time         `json:"appointment_date"`
	Start     TimeOfDay         `json:"start_time"`
	End       TimeOfDay         `json:"end_time"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// IsParty reports whether the actor is the appointment's teacher or student.
func (a *Appointment) IsParty(actor Actor) bool {
	return actor.ID == a.TeacherID || actor.ID == a.StudentID
}

// CanTransition enforces the status permission table:
//
//	student: scheduled|confirmed -> cancelled_by_student, own appointments only
//	teacher: scheduled|confirmed -> completed | cancelled_by_teacher, own only
//	admin:   may perform any of the above plus scheduled -> confirmed
//
// Terminal states permit no transition for any party.
func (a *Appointment) CanTransition(actor Actor, next AppointmentStatus) error {
	if !next.Valid() {
		return Validationf("unknown appointment status %q", next)
	}
	if a.Status.IsTerminal() {
		return Conflictf("appointment is already %s", a.Status)
	}
	if next == a.Status {
		return Validationf("appointment is already %s", next)
	}

	switch next {
	case AppointmentConfirmed:
		if a.Status != AppointmentScheduled {
			return Conflictf("only a scheduled appointment can be confirmed")
		}
		if !actor.IsAdmin() && !(actor.Role == RoleTeacher && actor.ID == a.TeacherID) {
			return Permissionf("only the teacher may confirm an appointment")
		}
	case AppointmentCancelledByStudent:
		if !actor.IsAdmin() && !(actor.Role == RoleStudent && actor.ID == a.StudentID) {
			return Permissionf("only the booking student may cancel this appointment")
		}
	case AppointmentCompleted, AppointmentCancelledByTeacher:
		if !actor.IsAdmin() && !(actor.Role == RoleTeacher && actor.ID == a.TeacherID) {
			return Permissionf("only the teacher may mark this appointment %s", next)
		}
	default:
		return Validationf("cannot transition back to %s", next)
	}
	return nil
}
