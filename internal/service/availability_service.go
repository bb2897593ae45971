package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorlane/tutorlane/internal/model"
	"github.com/tutorlane/tutorlane/internal/schedule"
)

// AvailabilityService manages a teacher's availability rules and answers
// the booking calendar's two questions: which dates in a month have at
// least one bookable hour, and which hour slots a given date offers.
type AvailabilityService struct {
	ruleStore     AvailabilityRuleStore
	apptStore     AppointmentStore
	scheduleStore ClassScheduleStore
	profileStore  ProfileStore
	logger        *zap.Logger
}

func NewAvailabilityService(
	ruleStore AvailabilityRuleStore,
	apptStore AppointmentStore,
	scheduleStore ClassScheduleStore,
	profileStore ProfileStore,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		ruleStore:     ruleStore,
		apptStore:     apptStore,
		scheduleStore: scheduleStore,
		profileStore:  profileStore,
		logger:        logger,
	}
}

// CreateRule creates an availability window for a teacher. The teacher may
// manage their own rules; an admin may act on any teacher's behalf.
func (s *AvailabilityService) CreateRule(ctx context.Context, actor model.Actor, rule *model.AvailabilityRule) error {
	if !actor.CanActFor(rule.TeacherID) {
		return model.Permissionf("only the teacher or an admin may manage availability")
	}
	if err := rule.Validate(); err != nil {
		return err
	}

	if err := s.requireTeacher(ctx, rule.TeacherID); err != nil {
		return err
	}

	rule.IsActive = true
	if err := s.ruleStore.Create(ctx, rule); err != nil {
		return model.Store("create availability rule", err)
	}

	s.logger.Info("Availability rule created",
		zap.String("rule_id", rule.ID.String()),
		zap.String("teacher_id", rule.TeacherID.String()),
		zap.Bool("is_recurring", rule.IsRecurring),
		zap.String("window", rule.Start.String()+"-"+rule.End.String()),
	)

	return nil
}

// UpdateRule rewrites an existing rule's pattern, window and notes.
// Ownership cannot move to another teacher.
func (s *AvailabilityService) UpdateRule(ctx context.Context, actor model.Actor, rule *model.AvailabilityRule) error {
	existing, err := s.ruleStore.GetByID(ctx, rule.ID)
	if err != nil {
		return model.Store("get availability rule", err)
	}
	if existing == nil {
		return model.NotFound("availability rule")
	}
	if !actor.CanActFor(existing.TeacherID) {
		return model.Permissionf("only the teacher or an admin may manage availability")
	}

	rule.TeacherID = existing.TeacherID
	if err := rule.Validate(); err != nil {
		return err
	}

	if err := s.ruleStore.Update(ctx, rule); err != nil {
		return model.Store("update availability rule", err)
	}

	s.logger.Info("Availability rule updated", zap.String("rule_id", rule.ID.String()))

	return nil
}

// DeactivateRule soft-deletes a rule; it stops contributing slots but is
// never removed from the store.
func (s *AvailabilityService) DeactivateRule(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	rule, err := s.ruleStore.GetByID(ctx, id)
	if err != nil {
		return model.Store("get availability rule", err)
	}
	if rule == nil {
		return model.NotFound("availability rule")
	}
	if !actor.CanActFor(rule.TeacherID) {
		return model.Permissionf("only the teacher or an admin may manage availability")
	}

	if err := s.ruleStore.Deactivate(ctx, id); err != nil {
		return model.Store("deactivate availability rule", err)
	}

	s.logger.Info("Availability rule deactivated",
		zap.String("rule_id", id.String()),
		zap.String("teacher_id", rule.TeacherID.String()),
	)

	return nil
}

// ListRules returns all of a teacher's rules, active and inactive.
func (s *AvailabilityService) ListRules(ctx context.Context, teacherID uuid.UUID) ([]*model.AvailabilityRule, error) {
	rules, err := s.ruleStore.ListByTeacher(ctx, teacherID, false)
	if err != nil {
		return nil, model.Store("list availability rules", err)
	}
	return rules, nil
}

// AvailableDates returns the dates in the given month with at least one
// bookable hour, in ISO form, excluding dates strictly before today. A
// teacher with no rules yields an empty list, not an error.
func (s *AvailabilityService) AvailableDates(ctx context.Context, teacherID uuid.UUID, year int, month time.Month, today time.Time) ([]string, error) {
	if err := s.requireTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	rules, appointments, entries, err := s.loadMonth(ctx, teacherID, year, month)
	if err != nil {
		return nil, err
	}

	dates := schedule.MonthDates(teacherID, year, month, today, rules, appointments, entries)
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return out, nil
}

// AvailableSlots returns the ordered bookable hour slots for one date.
// Dates in the past have no slots.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, teacherID uuid.UUID, date, today time.Time) ([]model.BookableSlot, error) {
	if err := s.requireTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if date.Before(startOfToday) {
		return nil, nil
	}

	rules, err := s.ruleStore.ListByTeacher(ctx, teacherID, true)
	if err != nil {
		return nil, model.Store("list availability rules", err)
	}
	appointments, err := s.apptStore.ListByTeacherDate(ctx, teacherID, date, true)
	if err != nil {
		return nil, model.Store("list appointments", err)
	}
	entries, err := s.scheduleStore.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, model.Store("list class schedule", err)
	}

	return schedule.DaySlots(teacherID, date, rules, appointments, entries), nil
}

func (s *AvailabilityService) loadMonth(ctx context.Context, teacherID uuid.UUID, year int, month time.Month) ([]*model.AvailabilityRule, []*model.Appointment, []*model.ClassScheduleEntry, error) {
	rules, err := s.ruleStore.ListByTeacher(ctx, teacherID, true)
	if err != nil {
		return nil, nil, nil, model.Store("list availability rules", err)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	appointments, err := s.apptStore.ListByTeacherBetween(ctx, teacherID, first, last, true)
	if err != nil {
		return nil, nil, nil, model.Store("list appointments", err)
	}

	entries, err := s.scheduleStore.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, nil, nil, model.Store("list class schedule", err)
	}

	return rules, appointments, entries, nil
}

func (s *AvailabilityService) requireTeacher(ctx context.Context, teacherID uuid.UUID) error {
	teacher, err := s.profileStore.GetByID(ctx, teacherID)
	if err != nil {
		return model.Store("get teacher", err)
	}
	if teacher == nil || !teacher.IsActive || teacher.Role != model.RoleTeacher {
		return model.NotFound("teacher")
	}
	return nil
}
