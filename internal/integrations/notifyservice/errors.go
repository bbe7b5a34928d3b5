package notifyservice

import "errors"

var (
	// ErrInternal is returned for client-side failures
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrInvalidResponse is returned when the notification service answers
	// with an unexpected status
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")
)
