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

type bookingFixture struct {
	svc       *BookingService
	appts     *fakeApptStore
	entries   *fakeScheduleStore
	profiles  *fakeProfileStore
	teacherID uuid.UUID
	studentID uuid.UUID
	subjectID uuid.UUID
}

func newBookingFixture() *bookingFixture {
	teacherID := uuid.New()
	studentID := uuid.New()
	subjectID := uuid.New()

	profiles := &fakeProfileStore{profiles: []*model.Profile{
		{ID: teacherID, FullName: "Ada Lovelace", Role: model.RoleTeacher, IsActive: true},
		{ID: studentID, FullName: "Blaise Pascal", Role: model.RoleStudent, IsActive: true},
	}}
	subjects := &fakeSubjectStore{subjects: []*model.Subject{
		{ID: subjectID, Name: "Mathematics", IsActive: true},
	}}
	appts := &fakeApptStore{}
	entries := &fakeScheduleStore{}

	return &bookingFixture{
		svc:       NewBookingService(appts, entries, subjects, profiles, zap.NewNop()),
		appts:     appts,
		entries:   entries,
		profiles:  profiles,
		teacherID: teacherID,
		studentID: studentID,
		subjectID: subjectID,
	}
}

func (f *bookingFixture) request(start, end model.TimeOfDay) BookingRequest {
	return BookingRequest{
		TeacherID: f.teacherID,
		StudentID: f.studentID,
		SubjectID: f.subjectID,
		Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), // a Monday
		Start:     start,
		End:       end,
	}
}

func (f *bookingFixture) student() model.Actor {
	return model.Actor{ID: f.studentID, Role: model.RoleStudent}
}

func TestBookHappyPath(t *testing.T) {
	f := newBookingFixture()

	apt, err := f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))

	require.NoError(t, err)
	assert.Equal(t, model.AppointmentScheduled, apt.Status)
	assert.NotEqual(t, uuid.Nil, apt.ID)
	assert.Equal(t, f.teacherID, apt.TeacherID)
}

func TestBookRejectsMissingFields(t *testing.T) {
	f := newBookingFixture()
	req := f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))
	req.SubjectID = uuid.Nil

	_, err := f.svc.Book(context.Background(), f.student(), req)

	assert.True(t, model.IsValidation(err), "want validation error, got %v", err)
}

func TestBookRejectsInvertedWindow(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(11, 0), model.NewTimeOfDay(10, 0)))

	assert.True(t, model.IsValidation(err), "want validation error, got %v", err)
}

func TestBookRejectsUnknownTeacher(t *testing.T) {
	f := newBookingFixture()
	req := f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))
	req.TeacherID = uuid.New()

	_, err := f.svc.Book(context.Background(), model.Actor{ID: f.studentID, Role: model.RoleStudent}, req)

	assert.True(t, model.IsNotFound(err), "want not-found error, got %v", err)
}

func TestBookConflictIsStable(t *testing.T) {
	f := newBookingFixture()
	req := f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))

	_, err := f.svc.Book(context.Background(), f.student(), req)
	require.NoError(t, err)

	// Rebooking the taken slot fails the same way no matter how often
	// it is attempted.
	for i := 0; i < 3; i++ {
		_, err := f.svc.Book(context.Background(), f.student(), req)
		assert.True(t, model.IsConflict(err), "attempt %d: want conflict, got %v", i, err)
	}
}

func TestBookPartialOverlapConflicts(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))
	require.NoError(t, err)

	_, err = f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(10, 30), model.NewTimeOfDay(11, 30)))
	assert.True(t, model.IsConflict(err), "want conflict, got %v", err)

	// Back to back is fine.
	_, err = f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(11, 0), model.NewTimeOfDay(12, 0)))
	assert.NoError(t, err)
}

func TestCancellationFreesTheSlot(t *testing.T) {
	f := newBookingFixture()
	req := f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))

	first, err := f.svc.Book(context.Background(), f.student(), req)
	require.NoError(t, err)

	// A second student cannot take the same slot yet.
	secondStudent := uuid.New()
	f.profiles.profiles = append(f.profiles.profiles,
		&model.Profile{ID: secondStudent, FullName: "Carl Gauss", Role: model.RoleStudent, IsActive: true})
	secondReq := req
	secondReq.StudentID = secondStudent
	_, err = f.svc.Book(context.Background(), model.Actor{ID: secondStudent, Role: model.RoleStudent}, secondReq)
	require.True(t, model.IsConflict(err))

	// After the first student cancels, the identical request succeeds.
	_, err = f.svc.Transition(context.Background(), f.student(), first.ID, model.AppointmentCancelledByStudent)
	require.NoError(t, err)

	apt, err := f.svc.Book(context.Background(), model.Actor{ID: secondStudent, Role: model.RoleStudent}, secondReq)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentScheduled, apt.Status)
}

func TestBookStudentCannotBookForOthers(t *testing.T) {
	f := newBookingFixture()
	req := f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0))

	_, err := f.svc.Book(context.Background(), model.Actor{ID: uuid.New(), Role: model.RoleStudent}, req)

	assert.True(t, model.IsPermission(err), "want permission error, got %v", err)
}

func TestBookClassCheckOnSchedulingPathOnly(t *testing.T) {
	f := newBookingFixture()
	// Monday class 10:00-11:00 for this teacher.
	f.entries.entries = append(f.entries.entries, &model.ClassScheduleEntry{
		ID:        uuid.New(),
		ClassID:   uuid.New(),
		SubjectID: f.subjectID,
		TeacherID: f.teacherID,
		DayOfWeek: 1,
		Start:     model.NewTimeOfDay(10, 0),
		End:       model.NewTimeOfDay(11, 0),
	})
	req := f.request(model.NewTimeOfDay(10, 30), model.NewTimeOfDay(11, 30))

	// The admin scheduling path sees the class conflict.
	_, err := f.svc.Book(context.Background(), model.Actor{ID: uuid.New(), Role: model.RoleAdmin}, req)
	assert.True(t, model.IsConflict(err), "want conflict, got %v", err)

	// The student path does not run the class check; the slot view is
	// responsible for hiding class hours.
	_, err = f.svc.Book(context.Background(), f.student(), req)
	assert.NoError(t, err)
}

func TestTransitionTerminalStateIsImmutable(t *testing.T) {
	f := newBookingFixture()
	teacher := model.Actor{ID: f.teacherID, Role: model.RoleTeacher}

	apt, err := f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), teacher, apt.ID, model.AppointmentCompleted)
	require.NoError(t, err)

	for _, next := range []model.AppointmentStatus{
		model.AppointmentScheduled,
		model.AppointmentConfirmed,
		model.AppointmentCancelledByTeacher,
		model.AppointmentCancelledByStudent,
	} {
		_, err := f.svc.Transition(context.Background(), teacher, apt.ID, next)
		assert.Error(t, err, "transition to %s out of completed must fail", next)
	}
}

func TestTransitionUnknownAppointment(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.Transition(context.Background(), f.student(), uuid.New(), model.AppointmentCancelledByStudent)

	assert.True(t, model.IsNotFound(err), "want not-found error, got %v", err)
}

func TestUpdateNotesPermissions(t *testing.T) {
	f := newBookingFixture()

	apt, err := f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))
	require.NoError(t, err)

	err = f.svc.UpdateNotes(context.Background(), f.student(), apt.ID, "bring workbook")
	assert.NoError(t, err)

	err = f.svc.UpdateNotes(context.Background(), model.Actor{ID: uuid.New(), Role: model.RoleStudent}, apt.ID, "nope")
	assert.True(t, model.IsPermission(err), "want permission error, got %v", err)
}

func TestBookSurfacesStoreFailure(t *testing.T) {
	f := newBookingFixture()
	f.appts.err = assert.AnError

	_, err := f.svc.Book(context.Background(), f.student(),
		f.request(model.NewTimeOfDay(10, 0), model.NewTimeOfDay(11, 0)))

	assert.True(t, model.IsStore(err), "want store error, got %v", err)
}
