package store

import "errors"

// Sentinel errors returned by store operations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEncodingRecords is returned when the record collection cannot be
	// serialized before a write.
	ErrEncodingRecords = errors.New("error encoding offline records")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// local database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
