package cart

import "errors"

var (
	// ErrItemNotFound is returned when the cart holds no item with the given id
	ErrItemNotFound = errors.New("cart: item not found")

	// ErrServiceNotFound is returned when a replacement service is not in the catalog
	ErrServiceNotFound = errors.New("cart: service not found")

	// ErrUnknownTimeSlot is returned for labels outside the fixed catalog
	ErrUnknownTimeSlot = errors.New("cart: unknown time slot")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("cart: invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("cart: internal error")
)
