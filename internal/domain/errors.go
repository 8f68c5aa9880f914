package domain

import "errors"

// ErrStorageUnavailable is returned by the in-memory fallback store for
// operations that strictly require the persistent backend.
var ErrStorageUnavailable = errors.New("database connection not available")
