package dirlock

// ILock defines the interface for a directory based lock handle.
type ILock interface {
	// Acquire blocks until this handle created the lock directory or the
	// configured timeout expired. On timeout it returns ErrTimeout and the
	// handle remains unacquired.
	Acquire() error

	// Release removes the lock directory if it is held by this handle.
	// Releasing a handle that does not hold the lock is a no-op.
	Release() error

	// Do acquires the lock, runs fn and releases the lock again on every
	// return path, including an error or panic propagating out of fn.
	Do(fn func() error) error

	// Acquired reports whether this handle currently holds the lock.
	Acquired() bool

	// Path returns the path of the lock directory.
	Path() string
}
