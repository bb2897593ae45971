package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorlane/tutorlane/internal/model"
	"github.com/tutorlane/tutorlane/internal/schedule"
)

// BookingService validates and commits appointments and drives the
// appointment status state machine.
type BookingService struct {
	apptStore     AppointmentStore
	scheduleStore ClassScheduleStore
	subjectStore  SubjectStore
	profileStore  ProfileStore
	logger        *zap.Logger
}

func NewBookingService(
	apptStore AppointmentStore,
	scheduleStore ClassScheduleStore,
	subjectStore SubjectStore,
	profileStore ProfileStore,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		apptStore:     apptStore,
		scheduleStore: scheduleStore,
		subjectStore:  subjectStore,
		profileStore:  profileStore,
		logger:        logger,
	}
}

// BookingRequest carries everything needed to create an appointment. All
// identities are explicit; nothing is inferred from ambient state.
type BookingRequest struct {
	TeacherID uuid.UUID
	StudentID uuid.UUID
	SubjectID uuid.UUID
	Date      time.Time
	Start     model.TimeOfDay
	End       model.TimeOfDay
	Notes     string
}

// Book attempts to create a new appointment in status scheduled.
// Preconditions run in order and each violation is a typed hard failure:
// required fields, a valid time window, no overlapping blocking appointment
// for the teacher on that date, and on the admin/teacher scheduling path no
// class-schedule conflict. The commit itself is conditional, so a booking
// that lost a race to a concurrent request fails with a conflict instead
// of double-booking the teacher.
func (s *BookingService) Book(ctx context.Context, actor model.Actor, req BookingRequest) (*model.Appointment, error) {
	if req.TeacherID == uuid.Nil || req.StudentID == uuid.Nil || req.SubjectID == uuid.Nil || req.Date.IsZero() {
		return nil, model.Validationf("subject, teacher, date and time slot are required")
	}
	if !req.Start.Valid() || !req.End.Valid() || req.Start >= req.End {
		return nil, model.Validationf("time window invalid: start must be before end")
	}

	switch actor.Role {
	case model.RoleStudent:
		if req.StudentID != actor.ID {
			return nil, model.Permissionf("students may only book for themselves")
		}
	case model.RoleTeacher:
		if req.TeacherID != actor.ID {
			return nil, model.Permissionf("teachers may only schedule their own calendar")
		}
	case model.RoleAdmin:
	default:
		return nil, model.Validationf("unknown actor role %q", actor.Role)
	}

	if err := s.requireRefs(ctx, req); err != nil {
		return nil, err
	}

	booked, err := s.apptStore.ListByTeacherDate(ctx, req.TeacherID, req.Date, true)
	if err != nil {
		return nil, model.Store("list appointments", err)
	}
	if conflict := schedule.FindAppointmentConflict(req.Date, req.Start, req.End, booked); conflict != nil {
		return nil, model.Conflictf("this teacher is already booked from %s to %s", conflict.Start, conflict.End)
	}

	// The class-schedule check runs only on the admin/teacher scheduling
	// path; a student books out of the slot view, which already excludes
	// class hours.
	if actor.Role != model.RoleStudent {
		entries, err := s.scheduleStore.ListByTeacher(ctx, req.TeacherID)
		if err != nil {
			return nil, model.Store("list class schedule", err)
		}
		weekday := int(req.Date.Weekday())
		if conflict := schedule.FindEntryConflict(weekday, req.Start, req.End, entries, uuid.Nil); conflict != nil {
			return nil, model.Conflictf("this teacher already has a class from %s to %s on that day", conflict.Start, conflict.End)
		}
	}

	apt := &model.Appointment{
		TeacherID: req.TeacherID,
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		Status:    model.AppointmentScheduled,
		Notes:     req.Notes,
	}

	inserted, err := s.apptStore.CreateIfFree(ctx, apt)
	if err != nil {
		return nil, model.Store("create appointment", err)
	}
	if !inserted {
		return nil, model.Conflictf("the selected slot has just been taken")
	}

	s.logger.Info("Appointment booked",
		zap.String("appointment_id", apt.ID.String()),
		zap.String("teacher_id", apt.TeacherID.String()),
		zap.String("student_id", apt.StudentID.String()),
		zap.Time("date", apt.Date),
		zap.String("window", apt.Start.String()+"-"+apt.End.String()),
	)

	return apt, nil
}

// Transition moves an appointment to the next status, enforcing the
// per-role permission table and terminal-state immutability.
func (s *BookingService) Transition(ctx context.Context, actor model.Actor, id uuid.UUID, next model.AppointmentStatus) (*model.Appointment, error) {
	apt, err := s.apptStore.GetByID(ctx, id)
	if err != nil {
		return nil, model.Store("get appointment", err)
	}
	if apt == nil {
		return nil, model.NotFound("appointment")
	}

	if err := apt.CanTransition(actor, next); err != nil {
		return nil, err
	}

	if err := s.apptStore.UpdateStatus(ctx, id, next); err != nil {
		return nil, model.Store("update appointment status", err)
	}
	apt.Status = next

	s.logger.Info("Appointment status changed",
		zap.String("appointment_id", id.String()),
		zap.String("status", string(next)),
		zap.String("actor_id", actor.ID.String()),
		zap.String("actor_role", string(actor.Role)),
	)

	return apt, nil
}

// UpdateNotes replaces the appointment's notes. Either party of the
// appointment (or an admin) may edit them.
func (s *BookingService) UpdateNotes(ctx context.Context, actor model.Actor, id uuid.UUID, notes string) error {
	apt, err := s.apptStore.GetByID(ctx, id)
	if err != nil {
		return model.Store("get appointment", err)
	}
	if apt == nil {
		return model.NotFound("appointment")
	}
	if !actor.IsAdmin() && !apt.IsParty(actor) {
		return model.Permissionf("only the appointment's teacher or student may edit notes")
	}

	if err := s.apptStore.UpdateNotes(ctx, id, notes); err != nil {
		return model.Store("update appointment notes", err)
	}

	return nil
}

// GetByID returns one appointment.
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.apptStore.GetByID(ctx, id)
	if err != nil {
		return nil, model.Store("get appointment", err)
	}
	if apt == nil {
		return nil, model.NotFound("appointment")
	}
	return apt, nil
}

// ListByTeacher returns a teacher's appointments, newest first.
func (s *BookingService) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.Appointment, error) {
	appointments, err := s.apptStore.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, model.Store("list appointments", err)
	}
	return appointments, nil
}

// ListByStudent returns a student's appointments, newest first.
func (s *BookingService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Appointment, error) {
	appointments, err := s.apptStore.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, model.Store("list appointments", err)
	}
	return appointments, nil
}

// ListByTeacherDate returns a teacher's appointments on one date.
func (s *BookingService) ListByTeacherDate(ctx context.Context, teacherID uuid.UUID, date time.Time) ([]*model.Appointment, error) {
	appointments, err := s.apptStore.ListByTeacherDate(ctx, teacherID, date, false)
	if err != nil {
		return nil, model.Store("list appointments", err)
	}
	return appointments, nil
}

func (s *BookingService) requireRefs(ctx context.Context, req BookingRequest) error {
	teacher, err := s.profileStore.GetByID(ctx, req.TeacherID)
	if err != nil {
		return model.Store("get teacher", err)
	}
	if teacher == nil || !teacher.IsActive || teacher.Role != model.RoleTeacher {
		return model.NotFound("teacher")
	}

	student, err := s.profileStore.GetByID(ctx, req.StudentID)
	if err != nil {
		return model.Store("get student", err)
	}
	if student == nil || !student.IsActive || student.Role != model.RoleStudent {
		return model.NotFound("student")
	}

	subject, err := s.subjectStore.GetByID(ctx, req.SubjectID)
	if err != nil {
		return model.Store("get subject", err)
	}
	if subject == nil || !subject.IsActive {
		return model.NotFound("subject")
	}

	return nil
}
