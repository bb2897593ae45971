package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
)

// SlotDuration is the bookable unit: slots are 1-hour aligned.
const SlotDuration = 60

// DaySlots expands the teacher's availability rules into the ordered list
// of bookable hour slots for one calendar date. Rules that do not apply on
// the date, appointments in a released status and class entries for other
// weekdays are filtered here, so callers can pass whatever they loaded for
// the surrounding period.
//
// A slot survives only if it is fully contained in at least one rule
// window and overlaps no blocking appointment and no class entry.
func DaySlots(
	teacherID uuid.UUID,
	date time.Time,
	rules []*model.AvailabilityRule,
	appointments []*model.Appointment,
	entries []*model.ClassScheduleEntry,
) []model.BookableSlot {
	hours := make(map[int]bool)
	for _, rule := range rules {
		if !rule.AppliesOn(date) {
			continue
		}
		first, last := containedHours(rule.Start, rule.End)
		for h := first; h < last; h++ {
			hours[h] = true
		}
	}
	if len(hours) == 0 {
		return nil
	}

	weekday := int(date.Weekday())
	var slots []model.BookableSlot
	for h := range hours {
		start := model.NewTimeOfDay(h, 0)
		end := start + SlotDuration
		if dayTaken(date, weekday, start, end, appointments, entries) {
			continue
		}
		slots = append(slots, model.BookableSlot{
			TeacherID: teacherID,
			Date:      date,
			Start:     start,
			End:       end,
		})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	return slots
}

// MonthDates returns the sorted calendar dates in the given month that have
// at least one bookable slot. Dates strictly before today are excluded.
func MonthDates(
	teacherID uuid.UUID,
	year int,
	month time.Month,
	today time.Time,
	rules []*model.AvailabilityRule,
	appointments []*model.Appointment,
	entries []*model.ClassScheduleEntry,
) []time.Time {
	loc := today.Location()
	cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	var dates []time.Time
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for day.Month() == month {
		if !day.Before(cutoff) && len(DaySlots(teacherID, day, rules, appointments, entries)) > 0 {
			dates = append(dates, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// containedHours returns the [first, last) hour range whose 1-hour slots
// fit entirely inside the window. A window not aligned to the hour shrinks
// inward: 09:30-12:00 yields hours 10 and 11.
func containedHours(start, end model.TimeOfDay) (int, int) {
	first := (int(start) + SlotDuration - 1) / SlotDuration
	last := int(end) / SlotDuration
	return first, last
}

func dayTaken(
	date time.Time,
	weekday int,
	start, end model.TimeOfDay,
	appointments []*model.Appointment,
	entries []*model.ClassScheduleEntry,
) bool {
	for _, apt := range appointments {
		if !apt.Status.BlocksSlot() || !model.SameDate(apt.Date, date) {
			continue
		}
		if Overlaps(start, end, apt.Start, apt.End) {
			return true
		}
	}
	for _, entry := range entries {
		if entry.DayOfWeek != weekday {
			continue
		}
		if Overlaps(start, end, entry.Start, entry.End) {
			return true
		}
	}
	return false
}
