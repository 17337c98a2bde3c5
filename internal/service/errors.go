package service

import "errors"

var (
	// ErrPayloadNotSerializable is returned by AddRecord when the payload
	// cannot be serialized. The record is not stored: a zero-size record
	// would silently corrupt the storage accounting.
	ErrPayloadNotSerializable = errors.New("record payload is not serializable")
)
