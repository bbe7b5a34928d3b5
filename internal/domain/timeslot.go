package domain

import (
	"time"

	"github.com/lumib/salon-booking-service/pkg/types"
)

// DefaultSlotLabels is the fixed daily catalog of bookable times, in
// chronological order. The catalog is service-agnostic.
var DefaultSlotLabels = []types.TimeLabel{
	"8:30 AM",
	"10:00 AM",
	"11:30 AM",
	"1:30 PM",
	"3:00 PM",
	"4:30 PM",
}

// IsKnownSlotLabel reports whether the label belongs to the catalog
func IsKnownSlotLabel(catalog []types.TimeLabel, label types.TimeLabel) bool {
	for _, l := range catalog {
		if l == label {
			return true
		}
	}
	return false
}

// AllSlotsPassed reports whether every slot's start time is at or before
// the given instant. The caller must only apply this to today's date;
// for any other day the answer is meaningless.
func AllSlotsPassed(catalog []types.TimeLabel, now time.Time) bool {
	for _, label := range catalog {
		passed, err := label.AtOrBefore(now)
		if err != nil || !passed {
			return false
		}
	}
	return true
}
