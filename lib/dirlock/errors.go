package dirlock

import "errors"

// Predefined errors. Use errors.Is for matching, for example:
//
//	if errors.Is(err, dirlock.ErrTimeout) {
//	    // the lock stayed held by someone else for the whole wait window
//	}
var (
	// ErrTimeout is returned by Acquire when the lock could not be
	// acquired before the configured timeout expired. The handle stays
	// usable for a future attempt.
	ErrTimeout = errors.New("dirlock: acquiring lock timed out")

	// ErrEmptyPath is returned when a lock was constructed with an empty
	// lock directory path.
	ErrEmptyPath = errors.New("dirlock: lock path must not be empty")
)
