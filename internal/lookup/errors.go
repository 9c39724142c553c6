package lookup

import "errors"

// Common lookup errors.
var (
	// ErrNotFound is returned when the search endpoint does not exist.
	ErrNotFound = errors.New("similar titles lookup: not found")
	// ErrRateLimited is returned when the service throttles the client.
	ErrRateLimited = errors.New("similar titles lookup: rate limited")
)
