package get_day_slots

import (
	"time"

	"github.com/lumib/salon-booking-service/pkg/types"
)

// resolveSlots produces the availability verdict for every catalog slot.
// Precedence per slot: a booked label wins over elapsed time; elapsed
// time only applies when the target date is today.
func resolveSlots(
	catalog []types.TimeLabel,
	bookedLabels map[types.TimeLabel]bool,
	isToday bool,
	now time.Time,
) []SlotView {
	slots := make([]SlotView, len(catalog))

	for i, label := range catalog {
		switch {
		case bookedLabels[label]:
			slots[i] = SlotView{Label: label, Available: false, IsBooked: true}
		case isToday && labelPassed(label, now):
			slots[i] = SlotView{Label: label, Available: false, IsBooked: false}
		default:
			slots[i] = SlotView{Label: label, Available: true, IsBooked: false}
		}
	}

	return slots
}

// labelPassed reports whether the slot's start time is at or before now.
// The catalog is fixed, so a parse failure is a programming error; such a
// label is treated as not passed rather than silently disabled.
func labelPassed(label types.TimeLabel, now time.Time) bool {
	passed, err := label.AtOrBefore(now)
	if err != nil {
		return false
	}
	return passed
}

// isSameDay reports whether two instants fall on the same calendar day
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
