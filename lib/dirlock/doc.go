// Package dirlock implements a cooperative mutual-exclusion lock based on
// the atomicity of directory creation. It coordinates multiple processes
// that share a filesystem, including network and cluster filesystems where
// plain file writes and renames are not guaranteed to be atomic but
// directory creation is.
//
// The package provides no internal state beyond the in-memory registry of
// locks held by the current process. The lock itself lives entirely on the
// filesystem: the existence of the lock directory signals "held", its
// absence signals "free". The directory carries no payload - no PID file,
// no timestamp, no metadata.
//
// Core Functionality:
//   - Blocking lock acquisition with a fixed retry interval
//   - Optional acquisition timeout (the default is to wait forever)
//   - Idempotent release that tolerates the directory having disappeared
//   - Scoped acquisition via Do, which releases on every return path
//   - Emergency cleanup of all held locks on SIGINT/SIGTERM
//
// Implementation Approach:
//
//	Locks are implemented by leveraging the all-or-nothing semantics of
//	mkdir. Specifically:
//
//	- Acquisition: Attempts to create the lock directory in a polling
//	  loop. Creating a directory either succeeds completely or fails
//	  because it already exists, so whichever process's attempt wins the
//	  race holds the lock. There is no backoff and no fairness among
//	  waiters - hold times are assumed short and contention low.
//
//	- Release: Removes the lock directory. A directory that is already
//	  absent counts as a successful release, which makes Release safe to
//	  call twice and safe to race against emergency cleanup.
//
//	- Emergency Cleanup: Every successfully acquired handle is tracked in
//	  a process-wide registry. InstallCleanupHooks installs handlers for
//	  SIGINT and SIGTERM that release all registered locks before the
//	  process dies from the signal, so a lock is not leaked when the
//	  holder is interrupted.
//
// Thread Safety:
//
//	Each handle guards its own state with a mutex and the registry is
//	backed by a concurrent map, so acquire and release are safe against
//	the cleanup path running on the signal-handling goroutine. The lock
//	itself is not reentrant: a handle that re-acquires without releasing
//	will poll against its own directory.
//
// Usage Example:
//
//	lock := dirlock.New("/shared/fs/.mylock",
//		dirlock.WithTimeout(30*time.Second),
//	)
//
//	err := lock.Do(func() error {
//		// protected work
//		return nil
//	})
//	if errors.Is(err, dirlock.ErrTimeout) {
//		// another process held the lock for the whole wait window
//	}
//
// Limitations:
//
//	A caller that does not set a timeout blocks until the lock directory
//	disappears. If the previous holder crashed hard enough that its
//	cleanup hooks never ran (e.g. SIGKILL), the directory must be removed
//	out of band - for example with the Break method or the bundled CLI.
package dirlock
