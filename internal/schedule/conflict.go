package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
)

// FindAppointmentConflict returns the first blocking appointment whose
// window on the given date overlaps [start, end), or nil. Cancelled and
// completed appointments never conflict.
func FindAppointmentConflict(
	date time.Time,
	start, end model.TimeOfDay,
	appointments []*model.Appointment,
) *model.Appointment {
	for _, apt := range appointments {
		if !apt.Status.BlocksSlot() || !model.SameDate(apt.Date, date) {
			continue
		}
		if Overlaps(start, end, apt.Start, apt.End) {
			return apt
		}
	}
	return nil
}

// FindEntryConflict returns the first class-schedule entry on the given
// weekday overlapping [start, end), skipping the entry with the excluded id
// so updates do not conflict with themselves. Pass uuid.Nil to exclude
// nothing.
func FindEntryConflict(
	weekday int,
	start, end model.TimeOfDay,
	entries []*model.ClassScheduleEntry,
	exclude uuid.UUID,
) *model.ClassScheduleEntry {
	for _, entry := range entries {
		if entry.ID == exclude || entry.DayOfWeek != weekday {
			continue
		}
		if Overlaps(start, end, entry.Start, entry.End) {
			return entry
		}
	}
	return nil
}
