package validators

import "errors"

var (
	// ErrUnknownRecordType is returned when a record is created with a
	// type outside the closed set of known capture categories.
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrEmptyPayload is returned when a record is created without a
	// payload.
	ErrEmptyPayload = errors.New("record payload is required")
)
