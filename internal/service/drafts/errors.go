package drafts

import "errors"

var (
	// ErrServiceNotFound is returned when the selected service is not in the catalog
	ErrServiceNotFound = errors.New("drafts: service not found")

	// ErrUnknownTimeSlot is returned for labels outside the fixed catalog
	ErrUnknownTimeSlot = errors.New("drafts: unknown time slot")

	// ErrInvalidDay is returned for days outside the displayed month
	ErrInvalidDay = errors.New("drafts: invalid day for displayed month")

	// ErrTooManyPhotos is returned when the photo limit is exceeded
	ErrTooManyPhotos = errors.New("drafts: too many photos attached")

	// ErrPhotoNotFound is returned for photo indexes out of range
	ErrPhotoNotFound = errors.New("drafts: photo index out of range")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("drafts: invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("drafts: internal error")
)
