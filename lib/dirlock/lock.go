package dirlock

import (
	"fmt"
	"sync"
	"time"

	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("dirlock")

// DirLock is a handle on a named, filesystem-path-identified
// mutual-exclusion lock. The handle is reusable: it can be acquired,
// released and re-acquired any number of times.
//
// A handle holds the lock iff it created the directory at its path and has
// not removed it yet. Two handles on the same path - in the same process or
// in different processes - contend for the same lock.
type DirLock struct {
	path            string
	retryInterval   time.Duration
	timeoutInterval time.Duration

	mu       sync.Mutex // guards acquired against the cleanup goroutine
	acquired bool
}

var _ ILock = (*DirLock)(nil)

// New creates a new lock handle for the directory at path.
// The handle starts out unacquired.
func New(path string, opts ...Option) *DirLock {
	l := &DirLock{
		path:            path,
		retryInterval:   DefaultRetryInterval,
		timeoutInterval: -1, // wait forever
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Acquire blocks until this handle created the lock directory or the
// configured timeout expired.
//
// The loop attempts an atomic mkdir at a fixed interval. "Directory already
// exists" means some holder (possibly this handle itself, if the caller
// re-acquires without releasing) has the lock, and is never surfaced - the
// loop simply retries. Any other creation failure (missing parent
// directory, permissions) aborts the attempt and propagates.
//
// With a timeout of zero or more, Acquire returns ErrTimeout once the
// deadline has passed; an already expired deadline fails after the first
// attempt without sleeping.
func (l *DirLock) Acquire() error {
	if l.path == "" {
		return ErrEmptyPath
	}

	start := time.Now()

	for {
		res, err := createLockDir(l.path)

		switch res {
		case createCreated:
			// register while holding the mutex so cleanup never sees an
			// acquired handle that is missing from the registry
			l.mu.Lock()
			l.acquired = true
			defaultRegistry.register(l)
			l.mu.Unlock()

			acquireTotal.Inc()
			acquireWait.UpdateDuration(start)
			return nil

		case createExists:
			// held by someone, fall through to the deadline check

		default:
			return fmt.Errorf("dirlock: acquiring %s: %w", l.path, err)
		}

		if l.timeoutInterval >= 0 && time.Since(start) > l.timeoutInterval {
			acquireTimeouts.Inc()
			return ErrTimeout
		}

		time.Sleep(l.retryInterval)
	}
}

// Release removes the lock directory if this handle holds it. Calling
// Release on a handle that does not hold the lock is a no-op, so releasing
// twice is safe.
//
// A lock directory that is already gone (removed out of band, or raced by
// emergency cleanup) counts as released. Any other removal failure - e.g.
// permission denied or a non-empty directory - propagates as an error and
// the handle stays acquired and registered, so a later Release or the
// cleanup path can retry.
func (l *DirLock) Release() error {
	l.mu.Lock()

	if !l.acquired {
		l.mu.Unlock()
		return nil
	}

	res, err := removeLockDir(l.path)
	if res == removeFailure {
		l.mu.Unlock()
		return fmt.Errorf("dirlock: releasing %s: %w", l.path, err)
	}

	l.acquired = false
	defaultRegistry.unregister(l)
	l.mu.Unlock()

	releaseTotal.Inc()
	return nil
}

// Do acquires the lock, runs fn and releases the lock again. The release
// runs on every return path, including an error return or a panic
// unwinding through fn. An error from fn wins over a release error; a
// release error is only surfaced when fn succeeded.
//
// This is the recommended usage pattern since it cannot leak the lock on
// an early return.
func (l *DirLock) Do(fn func() error) (err error) {
	if err = l.Acquire(); err != nil {
		return err
	}

	defer func() {
		relErr := l.Release()
		if err == nil {
			err = relErr
		}
	}()

	return fn()
}

// Break removes the lock directory regardless of which handle or process
// created it. It is meant for operator tooling that has to clear a lock
// left behind by a holder that died without running its cleanup hooks.
// A directory that is already absent counts as broken.
func (l *DirLock) Break() error {
	if l.path == "" {
		return ErrEmptyPath
	}

	res, err := removeLockDir(l.path)
	if res == removeFailure {
		return fmt.Errorf("dirlock: breaking %s: %w", l.path, err)
	}

	l.mu.Lock()
	l.acquired = false
	defaultRegistry.unregister(l)
	l.mu.Unlock()

	return nil
}

// Acquired reports whether this handle currently holds the lock.
func (l *DirLock) Acquired() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquired
}

// Path returns the path of the lock directory.
func (l *DirLock) Path() string {
	return l.path
}
