package dirlock

import "time"

// DefaultRetryInterval is the pause between creation attempts when no
// custom interval is configured via WithRetryInterval.
const DefaultRetryInterval = 100 * time.Millisecond

// Option configures a DirLock created with New.
type Option func(*DirLock)

// WithRetryInterval sets the pause between directory creation attempts.
// Non-positive values are ignored.
// Default: DefaultRetryInterval (100ms).
func WithRetryInterval(d time.Duration) Option {
	return func(l *DirLock) {
		if d > 0 {
			l.retryInterval = d
		}
	}
}

// WithTimeout sets how long Acquire keeps retrying before it gives up with
// ErrTimeout. A negative value means wait forever, zero means a single
// attempt without waiting.
// Default: wait forever.
func WithTimeout(d time.Duration) Option {
	return func(l *DirLock) {
		l.timeoutInterval = d
	}
}
