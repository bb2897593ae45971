package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorlane/tutorlane/internal/model"
)

type scheduleFixture struct {
	svc       *ScheduleService
	entries   *fakeScheduleStore
	appts     *fakeApptStore
	teacherID uuid.UUID
	classID   uuid.UUID
	subjectID uuid.UUID
}

func newScheduleFixture() *scheduleFixture {
	teacherID := uuid.New()
	classID := uuid.New()
	subjectID := uuid.New()

	entries := &fakeScheduleStore{}
	appts := &fakeApptStore{}
	profiles := &fakeProfileStore{profiles: []*model.Profile{
		{ID: teacherID, FullName: "Ada Lovelace", Role: model.RoleTeacher, IsActive: true},
	}}
	subjects := &fakeSubjectStore{subjects: []*model.Subject{
		{ID: subjectID, Name: "Mathematics", IsActive: true},
	}}
	classes := &fakeClassStore{classes: []*model.Class{
		{ID: classID, Name: "9-A", IsActive: true},
	}}

	svc := NewScheduleService(entries, appts, profiles, subjects, classes, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	return &scheduleFixture{
		svc:       svc,
		entries:   entries,
		appts:     appts,
		teacherID: teacherID,
		classID:   classID,
		subjectID: subjectID,
	}
}

func (f *scheduleFixture) entry(day int, start, end model.TimeOfDay) *model.ClassScheduleEntry {
	return &model.ClassScheduleEntry{
		ClassID:   f.classID,
		SubjectID: f.subjectID,
		TeacherID: f.teacherID,
		DayOfWeek: day,
		Start:     start,
		End:       end,
	}
}

func admin() model.Actor {
	return model.Actor{ID: uuid.New(), Role: model.RoleAdmin}
}

func TestAssignHappyPath(t *testing.T) {
	f := newScheduleFixture()

	err := f.svc.Assign(context.Background(), admin(),
		f.entry(1, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))

	require.NoError(t, err)
	assert.Len(t, f.entries.entries, 1)
}

func TestAssignAdminOnly(t *testing.T) {
	f := newScheduleFixture()
	entry := f.entry(1, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))

	for _, role := range []model.Role{model.RoleTeacher, model.RoleStudent} {
		err := f.svc.Assign(context.Background(), model.Actor{ID: uuid.New(), Role: role}, entry)
		assert.True(t, model.IsPermission(err), "role %s: want permission error, got %v", role, err)
	}
}

func TestAssignTeacherDayConflict(t *testing.T) {
	f := newScheduleFixture()

	err := f.svc.Assign(context.Background(), admin(),
		f.entry(1, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))
	require.NoError(t, err)

	// Overlapping window on the same weekday is rejected.
	err = f.svc.Assign(context.Background(), admin(),
		f.entry(1, model.NewTimeOfDay(10, 30), model.NewTimeOfDay(11, 30)))
	assert.True(t, model.IsConflict(err), "want conflict, got %v", err)

	// Back to back on the same day is fine.
	err = f.svc.Assign(context.Background(), admin(),
		f.entry(1, model.NewTimeOfDay(11, 0), model.NewTimeOfDay(12, 0)))
	assert.NoError(t, err)

	// Same window on another weekday is fine.
	err = f.svc.Assign(context.Background(), admin(),
		f.entry(2, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))
	assert.NoError(t, err)
}

func TestAssignClassDayConflict(t *testing.T) {
	f := newScheduleFixture()
	// Another teacher already holds this class on Monday 10:00-11:00.
	f.entries.entries = append(f.entries.entries, &model.ClassScheduleEntry{
		ID:        uuid.New(),
		ClassID:   f.classID,
		SubjectID: f.subjectID,
		TeacherID: uuid.New(),
		DayOfWeek: 1,
		Start:     model.NewTimeOfDay(10, 0),
		End:       model.NewTimeOfDay(11, 0),
	})

	err := f.svc.Assign(context.Background(), admin(),
		f.entry(1, model.NewTimeOfDay(10, 30), model.NewTimeOfDay(11, 30)))

	assert.True(t, model.IsConflict(err), "want conflict, got %v", err)
}

func TestAssignAppointmentCrossCheck(t *testing.T) {
	f := newScheduleFixture()
	// An upcoming Monday appointment blocks the recurring window.
	f.appts.appointments = append(f.appts.appointments, &model.Appointment{
		ID:        uuid.New(),
		TeacherID: f.teacherID,
		StudentID: uuid.New(),
		SubjectID: f.subjectID,
		Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Start:     model.NewTimeOfDay(10, 0),
		End:       model.NewTimeOfDay(11, 0),
		Status:    model.AppointmentScheduled,
	})

	err := f.svc.Assign(context.Background(), admin(),
		f.entry(1, model.NewTimeOfDay(10, 30), model.NewTimeOfDay(11, 30)))
	assert.True(t, model.IsConflict(err), "want conflict, got %v", err)

	// A cancelled appointment does not block.
	f.appts.appointments[0].Status = model.AppointmentCancelledByStudent
	err = f.svc.Assign(context.Background(), admin(),
		f.entry(1, model.NewTimeOfDay(10, 30), model.NewTimeOfDay(11, 30)))
	assert.NoError(t, err)
}

func TestAssignRejectsUnknownRefs(t *testing.T) {
	f := newScheduleFixture()
	entry := f.entry(1, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))
	entry.ClassID = uuid.New()

	err := f.svc.Assign(context.Background(), admin(), entry)

	assert.True(t, model.IsNotFound(err), "want not-found error, got %v", err)
}

func TestReassignIgnoresOwnRow(t *testing.T) {
	f := newScheduleFixture()
	entry := f.entry(1, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))
	require.NoError(t, f.svc.Assign(context.Background(), admin(), entry))

	// Shifting the same entry within its own window must not self-conflict.
	moved := *entry
	moved.Start = model.NewTimeOfDay(10, 30)
	moved.End = model.NewTimeOfDay(11, 30)
	err := f.svc.Reassign(context.Background(), admin(), &moved)

	assert.NoError(t, err)
}

func TestReassignUnknownEntry(t *testing.T) {
	f := newScheduleFixture()
	entry := f.entry(1, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))
	entry.ID = uuid.New()

	err := f.svc.Reassign(context.Background(), admin(), entry)

	assert.True(t, model.IsNotFound(err), "want not-found error, got %v", err)
}

func TestRemove(t *testing.T) {
	f := newScheduleFixture()
	entry := f.entry(1, model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))
	require.NoError(t, f.svc.Assign(context.Background(), admin(), entry))

	require.NoError(t, f.svc.Remove(context.Background(), admin(), entry.ID))
	assert.Empty(t, f.entries.entries)

	err := f.svc.Remove(context.Background(), admin(), entry.ID)
	assert.True(t, model.IsNotFound(err), "want not-found error, got %v", err)
}
