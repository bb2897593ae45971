package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
)

// Store interfaces consumed by the services. The pgx repositories satisfy
// them in production; tests substitute in-memory fakes.

type AvailabilityRuleStore interface {
	Create(ctx context.Context, rule *model.AvailabilityRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.AvailabilityRule, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID, activeOnly bool) ([]*model.AvailabilityRule, error)
	Update(ctx context.Context, rule *model.AvailabilityRule) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type AppointmentStore interface {
	CreateIfFree(ctx context.Context, apt *model.Appointment) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	ListByTeacherBetween(ctx context.Context, teacherID uuid.UUID, from, to time.Time, blockingOnly bool) ([]*model.Appointment, error)
	ListByTeacherDate(ctx context.Context, teacherID uuid.UUID, date time.Time, blockingOnly bool) ([]*model.Appointment, error)
	ListByTeacherWeekday(ctx context.Context, teacherID uuid.UUID, weekday int, from time.Time) ([]*model.Appointment, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.Appointment, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
}

type ClassScheduleStore interface {
	Create(ctx context.Context, entry *model.ClassScheduleEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassScheduleEntry, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.ClassScheduleEntry, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]*model.ClassScheduleEntry, error)
	Update(ctx context.Context, entry *model.ClassScheduleEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	ListByRole(ctx context.Context, role model.Role) ([]*model.Profile, error)
}

type SubjectStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	ListActive(ctx context.Context) ([]*model.Subject, error)
}

type ClassStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	ListActive(ctx context.Context) ([]*model.Class, error)
}
