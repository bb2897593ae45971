// Package schedule holds the pure availability engine: expanding a
// teacher's availability rules into bookable hour slots for a calendar
// month and detecting temporal conflicts between commitments. Everything
// here is a function of its inputs, so it tests without the store.
package schedule

import "github.com/tutorlane/tutorlane/internal/model"

// Overlaps reports whether the half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect. This is the single overlap predicate used by
// both slot marking and booking validation, so the two views can never
// disagree at window boundaries.
func Overlaps(aStart, aEnd, bStart, bEnd model.TimeOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}
