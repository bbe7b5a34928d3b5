package create_booking

import (
	"fmt"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/pkg/types"
)

// validateRequest checks the request envelope. Selection completeness is
// validated separately once cart items are resolved.
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.CartItemID != nil && *req.CartItemID == "" {
		return fmt.Errorf("%w: cartItemID must not be empty", ErrInvalidInput)
	}
	if len(req.PhotoURLs) > domain.MaxDraftPhotos {
		return fmt.Errorf("%w: at most %d photos are allowed", ErrInvalidInput, domain.MaxDraftPhotos)
	}
	return nil
}

// validateSelection enforces the complete-selection rule for the resolved
// service, date and time triple
func validateSelection(serviceID string, date time.Time, label types.TimeLabel) error {
	if serviceID == "" || date.IsZero() || label.IsZero() {
		return ErrIncompleteSelection
	}
	if !domain.IsKnownSlotLabel(domain.DefaultSlotLabels, label) {
		return fmt.Errorf("%w: %s", ErrUnknownTimeSlot, label)
	}
	return nil
}

// validateTiming rejects past dates and, for today, slots whose start
// time has already elapsed
func validateTiming(date time.Time, label types.TimeLabel, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	if isSameDay(date, now) {
		passed, err := label.AtOrBefore(now)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownTimeSlot, label)
		}
		if passed {
			return ErrTimePassed
		}
	}
	return nil
}

// isSameDay reports whether two instants fall on the same calendar day
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether the date is before today, ignoring the
// time component
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
