package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule is a teacher-declared window during which they can be
// booked. A rule is either recurring (keyed by weekday) or one-off (keyed by
// an exact date), never both. Rules are soft-deactivated, never deleted.
type AvailabilityRule struct {
	ID           uuid.UUID  `json:"id"`
	TeacherID    uuid.UUID  `json:"teacher_id"`
	IsRecurring  bool       `json:"is_recurring"`
	DayOfWeek    *int       `json:"day_of_week"`   // 0 = Sunday, 6 = Saturday; set iff recurring
	SpecificDate *time.Time `json:"specific_date"` // set iff one-off
	Start        TimeOfDay  `json:"start_time"`
	End          TimeOfDay  `json:"end_time"`
	IsActive     bool       `json:"is_active"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Validate checks the rule's structural invariants.
func (r *AvailabilityRule) Validate() error {
	if !r.Start.Valid() || !r.End.Valid() {
		return Validationf("time window out of range")
	}
	if r.Start >= r.End {
		return Validationf("start time must be before end time")
	}
	if r.IsRecurring {
		if r.DayOfWeek == nil {
			return Validationf("recurring rule requires a day of week")
		}
		if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
			return Validationf("day of week must be between 0 and 6")
		}
		if r.SpecificDate != nil {
			return Validationf("recurring rule cannot have a specific date")
		}
		return nil
	}
	if r.SpecificDate == nil {
		return Validationf("one-off rule requires a specific date")
	}
	if r.DayOfWeek != nil {
		return Validationf("one-off rule cannot have a day of week")
	}
	return nil
}

// AppliesOn reports whether the rule covers the given calendar date.
// Inactive rules cover nothing.
func (r *AvailabilityRule) AppliesOn(date time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.IsRecurring {
		return r.DayOfWeek != nil && *r.DayOfWeek == int(date.Weekday())
	}
	return r.SpecificDate != nil && SameDate(*r.SpecificDate, date)
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
