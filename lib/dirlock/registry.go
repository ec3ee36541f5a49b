package dirlock

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Process-wide lock registry
//
// The registry tracks exactly the handles this process currently holds. It
// is consulted only by the emergency cleanup path - acquire and release do
// plain membership updates. It knows nothing about locks held by other
// processes or about other handles pointing at the same path.
// --------------------------------------------------------------------------

type lockRegistry struct {
	locks *xsync.MapOf[*DirLock, struct{}]
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		locks: xsync.NewMapOf[*DirLock, struct{}](),
	}
}

// defaultRegistry is the single process-lifetime registry instance. The
// concurrent map makes register/unregister safe against cleanupAll running
// on the signal-handling goroutine.
var defaultRegistry = newLockRegistry()

func (r *lockRegistry) register(l *DirLock) {
	r.locks.Store(l, struct{}{})
}

func (r *lockRegistry) unregister(l *DirLock) {
	r.locks.Delete(l)
}

// snapshot returns a copy of the current membership. Cleanup iterates the
// copy, not the live set, because every release mutates the registry.
func (r *lockRegistry) snapshot() []*DirLock {
	locks := make([]*DirLock, 0, r.locks.Size())
	r.locks.Range(func(l *DirLock, _ struct{}) bool {
		locks = append(locks, l)
		return true
	})
	return locks
}

func (r *lockRegistry) cleanupAll() {
	for _, l := range r.snapshot() {
		if err := l.Release(); err != nil {
			Logger.Warningf("failed to release lock %s during cleanup: %v", l.Path(), err)
		}
	}
}

// CleanupAll force-releases every lock this process currently holds and
// empties the registry. It runs automatically when a termination signal
// arrives after InstallCleanupHooks; hosts that want cleanup on normal exit
// as well should defer it from main.
//
// Release errors are logged and swallowed - emergency cleanup is best
// effort by design.
func CleanupAll() {
	defaultRegistry.cleanupAll()
}

// ActiveLocks returns the number of locks this process currently holds.
func ActiveLocks() int {
	return defaultRegistry.locks.Size()
}
