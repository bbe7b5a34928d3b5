package catalogservice

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog has no service with the given id
	ErrServiceNotFound = errors.New("catalogservice client: service not found")

	// ErrInternal is returned for client-side failures
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse is returned when the catalog answers with an unexpected payload
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
