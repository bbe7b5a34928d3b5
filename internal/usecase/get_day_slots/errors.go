package get_day_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("get_day_slots: internal error")
)
