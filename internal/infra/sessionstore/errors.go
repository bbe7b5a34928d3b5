package sessionstore

import "errors"

var (
	// ErrStore is returned when the session state cannot be read or written
	ErrStore = errors.New("sessionstore: store error")

	// ErrEncode is returned when the session state cannot be serialized
	ErrEncode = errors.New("sessionstore: failed to encode state")

	// ErrDecode is returned when the stored session state cannot be parsed
	ErrDecode = errors.New("sessionstore: failed to decode state")
)
