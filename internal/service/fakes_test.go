package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
	"github.com/tutorlane/tutorlane/internal/schedule"
)

// In-memory stores implementing the service interfaces. fakeApptStore keeps
// the real conditional-insert semantics so booking scenarios behave like
// the store does.

type fakeRuleStore struct {
	rules []*model.AvailabilityRule
	err   error
}

func (f *fakeRuleStore) Create(_ context.Context, rule *model.AvailabilityRule) error {
	if f.err != nil {
		return f.err
	}
	rule.ID = uuid.New()
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt
	f.rules = append(f.rules, rule)
	return nil
}

func (f *fakeRuleStore) GetByID(_ context.Context, id uuid.UUID) (*model.AvailabilityRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRuleStore) ListByTeacher(_ context.Context, teacherID uuid.UUID, activeOnly bool) ([]*model.AvailabilityRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.AvailabilityRule
	for _, r := range f.rules {
		if r.TeacherID != teacherID {
			continue
		}
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRuleStore) Update(_ context.Context, rule *model.AvailabilityRule) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.rules {
		if r.ID == rule.ID {
			f.rules[i] = rule
			return nil
		}
	}
	return nil
}

func (f *fakeRuleStore) Deactivate(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.rules {
		if r.ID == id {
			r.IsActive = false
		}
	}
	return nil
}

type fakeApptStore struct {
	appointments []*model.Appointment
	err          error
}

func (f *fakeApptStore) CreateIfFree(_ context.Context, apt *model.Appointment) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, ex := range f.appointments {
		if ex.TeacherID != apt.TeacherID || !ex.Status.BlocksSlot() || !model.SameDate(ex.Date, apt.Date) {
			continue
		}
		if schedule.Overlaps(apt.Start, apt.End, ex.Start, ex.End) {
			return false, nil
		}
	}
	apt.ID = uuid.New()
	apt.CreatedAt = time.Now()
	apt.UpdatedAt = apt.CreatedAt
	f.appointments = append(f.appointments, apt)
	return true, nil
}

func (f *fakeApptStore) GetByID(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeApptStore) ListByTeacherBetween(_ context.Context, teacherID uuid.UUID, from, to time.Time, blockingOnly bool) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.TeacherID != teacherID {
			continue
		}
		if a.Date.Before(from) || a.Date.After(to) {
			continue
		}
		if blockingOnly && !a.Status.BlocksSlot() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeApptStore) ListByTeacherDate(ctx context.Context, teacherID uuid.UUID, date time.Time, blockingOnly bool) ([]*model.Appointment, error) {
	return f.ListByTeacherBetween(ctx, teacherID, date, date, blockingOnly)
}

func (f *fakeApptStore) ListByTeacherWeekday(_ context.Context, teacherID uuid.UUID, weekday int, from time.Time) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.TeacherID != teacherID || int(a.Date.Weekday()) != weekday || !a.Status.BlocksSlot() {
			continue
		}
		if a.Date.Before(from) && !model.SameDate(a.Date, from) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeApptStore) ListByTeacher(_ context.Context, teacherID uuid.UUID) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.TeacherID == teacherID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptStore) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptStore) UpdateStatus(_ context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return nil
}

func (f *fakeApptStore) UpdateNotes(_ context.Context, id uuid.UUID, notes string) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.appointments {
		if a.ID == id {
			a.Notes = notes
			return nil
		}
	}
	return nil
}

type fakeScheduleStore struct {
	entries []*model.ClassScheduleEntry
	err     error
}

func (f *fakeScheduleStore) Create(_ context.Context, entry *model.ClassScheduleEntry) error {
	if f.err != nil {
		return f.err
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeScheduleStore) GetByID(_ context.Context, id uuid.UUID) (*model.ClassScheduleEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleStore) ListByTeacher(_ context.Context, teacherID uuid.UUID) ([]*model.ClassScheduleEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.ClassScheduleEntry
	for _, e := range f.entries {
		if e.TeacherID == teacherID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) ListByClass(_ context.Context, classID uuid.UUID) ([]*model.ClassScheduleEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.ClassScheduleEntry
	for _, e := range f.entries {
		if e.ClassID == classID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) Update(_ context.Context, entry *model.ClassScheduleEntry) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries[i] = entry
			return nil
		}
	}
	return nil
}

func (f *fakeScheduleStore) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProfileStore struct {
	profiles []*model.Profile
	err      error
}

func (f *fakeProfileStore) GetByID(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileStore) ListByRole(_ context.Context, role model.Role) ([]*model.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Profile
	for _, p := range f.profiles {
		if p.Role == role && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSubjectStore struct {
	subjects []*model.Subject
	err      error
}

func (f *fakeSubjectStore) GetByID(_ context.Context, id uuid.UUID) (*model.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubjectStore) ListActive(_ context.Context) ([]*model.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Subject
	for _, s := range f.subjects {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeClassStore struct {
	classes []*model.Class
	err     error
}

func (f *fakeClassStore) GetByID(_ context.Context, id uuid.UUID) (*model.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClassStore) ListActive(_ context.Context) ([]*model.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Class
	for _, c := range f.classes {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}
