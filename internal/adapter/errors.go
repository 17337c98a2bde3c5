package adapter

import "errors"

var (
	// ErrSyncRejected is returned when the remote data API answered the
	// upload with a non-success status: the batch was not accepted and
	// nothing may be marked synced.
	ErrSyncRejected = errors.New("sync batch rejected by server")

	// ErrServerUnavailable is returned when the remote data API could not
	// be reached at all or answered with a server-side failure.
	ErrServerUnavailable = errors.New("sync server unavailable")
)
