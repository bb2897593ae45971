package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorlane/tutorlane/internal/model"
	"github.com/tutorlane/tutorlane/internal/schedule"
)

// ScheduleService manages the recurring class schedule: admin-assigned
// weekly commitments binding a teacher to a class and subject. Every write
// runs the teacher-day, class-day and appointment cross-checks first;
// any conflict aborts the write and leaves the schedule untouched.
type ScheduleService struct {
	scheduleStore ClassScheduleStore
	apptStore     AppointmentStore
	profileStore  ProfileStore
	subjectStore  SubjectStore
	classStore    ClassStore
	logger        *zap.Logger

	now func() time.Time
}

func NewScheduleService(
	scheduleStore ClassScheduleStore,
	apptStore AppointmentStore,
	profileStore ProfileStore,
	subjectStore SubjectStore,
	classStore ClassStore,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleStore: scheduleStore,
		apptStore:     apptStore,
		profileStore:  profileStore,
		subjectStore:  subjectStore,
		classStore:    classStore,
		logger:        logger,
		now:           time.Now,
	}
}

// Assign creates a new class-schedule entry.
func (s *ScheduleService) Assign(ctx context.Context, actor model.Actor, entry *model.ClassScheduleEntry) error {
	if !actor.IsAdmin() {
		return model.Permissionf("only an admin may manage the class schedule")
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := s.requireRefs(ctx, entry); err != nil {
		return err
	}
	if err := s.checkConflicts(ctx, entry, uuid.Nil); err != nil {
		return err
	}

	if err := s.scheduleStore.Create(ctx, entry); err != nil {
		return model.Store("create class schedule entry", err)
	}

	s.logger.Info("Class schedule entry created",
		zap.String("entry_id", entry.ID.String()),
		zap.String("teacher_id", entry.TeacherID.String()),
		zap.String("class_id", entry.ClassID.String()),
		zap.Int("day_of_week", entry.DayOfWeek),
		zap.String("window", entry.Start.String()+"-"+entry.End.String()),
	)

	return nil
}

// Reassign updates an existing entry, running the same conflict checks but
// ignoring the entry's own current row.
func (s *ScheduleService) Reassign(ctx context.Context, actor model.Actor, entry *model.ClassScheduleEntry) error {
	if !actor.IsAdmin() {
		return model.Permissionf("only an admin may manage the class schedule")
	}

	existing, err := s.scheduleStore.GetByID(ctx, entry.ID)
	if err != nil {
		return model.Store("get class schedule entry", err)
	}
	if existing == nil {
		return model.NotFound("class schedule entry")
	}

	if err := entry.Validate(); err != nil {
		return err
	}
	if err := s.requireRefs(ctx, entry); err != nil {
		return err
	}
	if err := s.checkConflicts(ctx, entry, entry.ID); err != nil {
		return err
	}

	if err := s.scheduleStore.Update(ctx, entry); err != nil {
		return model.Store("update class schedule entry", err)
	}

	s.logger.Info("Class schedule entry updated", zap.String("entry_id", entry.ID.String()))

	return nil
}

// Remove deletes an entry.
func (s *ScheduleService) Remove(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return model.Permissionf("only an admin may manage the class schedule")
	}

	entry, err := s.scheduleStore.GetByID(ctx, id)
	if err != nil {
		return model.Store("get class schedule entry", err)
	}
	if entry == nil {
		return model.NotFound("class schedule entry")
	}

	if err := s.scheduleStore.Delete(ctx, id); err != nil {
		return model.Store("delete class schedule entry", err)
	}

	s.logger.Info("Class schedule entry deleted", zap.String("entry_id", id.String()))

	return nil
}

// ListByTeacher returns a teacher's weekly class commitments.
func (s *ScheduleService) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.ClassScheduleEntry, error) {
	entries, err := s.scheduleStore.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, model.Store("list class schedule", err)
	}
	return entries, nil
}

// ListByClass returns a class's weekly schedule.
func (s *ScheduleService) ListByClass(ctx context.Context, classID uuid.UUID) ([]*model.ClassScheduleEntry, error) {
	entries, err := s.scheduleStore.ListByClass(ctx, classID)
	if err != nil {
		return nil, model.Store("list class schedule", err)
	}
	return entries, nil
}

// checkConflicts runs the three overlap checks in order: against the
// teacher's other entries on that weekday, against the class's other
// entries on that weekday, and against the teacher's upcoming appointments
// on matching calendar dates.
func (s *ScheduleService) checkConflicts(ctx context.Context, entry *model.ClassScheduleEntry, exclude uuid.UUID) error {
	teacherEntries, err := s.scheduleStore.ListByTeacher(ctx, entry.TeacherID)
	if err != nil {
		return model.Store("list class schedule", err)
	}
	if conflict := schedule.FindEntryConflict(entry.DayOfWeek, entry.Start, entry.End, teacherEntries, exclude); conflict != nil {
		return model.Conflictf("teacher already has a class from %s to %s on that day", conflict.Start, conflict.End)
	}

	classEntries, err := s.scheduleStore.ListByClass(ctx, entry.ClassID)
	if err != nil {
		return model.Store("list class schedule", err)
	}
	if conflict := schedule.FindEntryConflict(entry.DayOfWeek, entry.Start, entry.End, classEntries, exclude); conflict != nil {
		return model.Conflictf("class already has a lesson from %s to %s on that day", conflict.Start, conflict.End)
	}

	appointments, err := s.apptStore.ListByTeacherWeekday(ctx, entry.TeacherID, entry.DayOfWeek, s.now())
	if err != nil {
		return model.Store("list appointments", err)
	}
	for _, apt := range appointments {
		if schedule.Overlaps(entry.Start, entry.End, apt.Start, apt.End) {
			return model.Conflictf("teacher has an appointment on %s from %s to %s",
				apt.Date.Format("2006-01-02"), apt.Start, apt.End)
		}
	}

	return nil
}

func (s *ScheduleService) requireRefs(ctx context.Context, entry *model.ClassScheduleEntry) error {
	teacher, err := s.profileStore.GetByID(ctx, entry.TeacherID)
	if err != nil {
		return model.Store("get teacher", err)
	}
	if teacher == nil || !teacher.IsActive || teacher.Role != model.RoleTeacher {
		return model.NotFound("teacher")
	}

	subject, err := s.subjectStore.GetByID(ctx, entry.SubjectID)
	if err != nil {
		return model.Store("get subject", err)
	}
	if subject == nil || !subject.IsActive {
		return model.NotFound("subject")
	}

	class, err := s.classStore.GetByID(ctx, entry.ClassID)
	if err != nil {
		return model.Store("get class", err)
	}
	if class == nil || !class.IsActive {
		return model.NotFound("class")
	}

	return nil
}
