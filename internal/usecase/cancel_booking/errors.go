package cancel_booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the id
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrCannotCancel is returned when the booking has already been
	// cancelled or completed
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("cancel_booking: internal error")
)
