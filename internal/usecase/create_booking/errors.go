package create_booking

import "errors"

var (
	// ErrIncompleteSelection is returned when a submission is attempted
	// without service, date and time all set. Rejected locally, nothing
	// is sent downstream.
	ErrIncompleteSelection = errors.New("create_booking: selection is incomplete")

	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrCartItemNotFound is returned when the referenced cart item does not exist
	ErrCartItemNotFound = errors.New("create_booking: cart item not found")

	// ErrInvalidDate is returned for dates in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrUnknownTimeSlot is returned for labels outside the fixed catalog
	ErrUnknownTimeSlot = errors.New("create_booking: unknown time slot")

	// ErrTimePassed is returned when today's chosen slot has already started
	ErrTimePassed = errors.New("create_booking: slot time has already passed")

	// ErrDateUnavailable is returned for blackout dates of the service
	ErrDateUnavailable = errors.New("create_booking: date is unavailable for this service")

	// ErrDayFullyBooked is returned when the day has reached its capacity
	ErrDayFullyBooked = errors.New("create_booking: day is fully booked")

	// ErrSlotTaken is returned when the service already has an active
	// booking for this slot
	ErrSlotTaken = errors.New("create_booking: slot is already booked")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
