package get_month_view

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_month_view: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("get_month_view: internal error")
)
