package models

import "errors"

// Service error taxonomy. Handlers map these onto HTTP statuses; thin or
// missing analytics data is expressed in result values, never as an error.
var (
	// ErrInvalidFilter marks a malformed or contradictory filter set, such
	// as an empty filter value or an inverted price range.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrStoreUnavailable marks a failure to reach or query the data store.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrTimeout marks a query that exceeded its deadline.
	ErrTimeout = errors.New("query timeout")

	// ErrProductNotFound marks a lookup of a nonexistent article id.
	ErrProductNotFound = errors.New("product not found")
)
