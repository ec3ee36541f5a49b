package dirlock

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TestCleanupAllEmpty verifies that cleanup with no held locks is a no-op
func TestCleanupAllEmpty(t *testing.T) {
	CleanupAll()

	if n := ActiveLocks(); n != 0 {
		t.Errorf("expected an empty registry, got %d entries", n)
	}
}

// TestCleanupAllSingle verifies that cleanup releases a single held lock
func TestCleanupAllSingle(t *testing.T) {
	lockDir := filepath.Join(t.TempDir(), ".lock")
	lock := New(lockDir)

	if err := lock.Acquire(); err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}
	if n := ActiveLocks(); n != 1 {
		t.Fatalf("expected 1 registered lock, got %d", n)
	}

	CleanupAll()

	if lock.Acquired() {
		t.Errorf("lock must report released after cleanup")
	}
	if n := ActiveLocks(); n != 0 {
		t.Errorf("expected an empty registry after cleanup, got %d entries", n)
	}
	if _, err := os.Stat(lockDir); !os.IsNotExist(err) {
		t.Errorf("lock directory should be gone after cleanup")
	}
}

// TestCleanupAllMany verifies that cleanup releases every held lock and
// fully drains the registry
func TestCleanupAllMany(t *testing.T) {
	tmp := t.TempDir()

	var locks []*DirLock
	for i := 0; i < 5; i++ {
		lock := New(filepath.Join(tmp, fmt.Sprintf(".lock-%d", i)))
		if err := lock.Acquire(); err != nil {
			t.Fatalf("failed to acquire lock %d: %v", i, err)
		}
		locks = append(locks, lock)
	}

	if n := ActiveLocks(); n != 5 {
		t.Fatalf("expected 5 registered locks, got %d", n)
	}

	CleanupAll()

	if n := ActiveLocks(); n != 0 {
		t.Errorf("expected an empty registry after cleanup, got %d entries", n)
	}
	for i, lock := range locks {
		if lock.Acquired() {
			t.Errorf("lock %d must report released after cleanup", i)
		}
		if _, err := os.Stat(lock.Path()); !os.IsNotExist(err) {
			t.Errorf("lock directory %d should be gone after cleanup", i)
		}
	}
}

// TestRegistryMembership verifies that the registry tracks exactly the
// currently acquired handles
func TestRegistryMembership(t *testing.T) {
	lockDir := filepath.Join(t.TempDir(), ".lock")
	lock := New(lockDir)

	before := ActiveLocks()

	if err := lock.Acquire(); err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}
	if n := ActiveLocks(); n != before+1 {
		t.Errorf("expected %d registered locks, got %d", before+1, n)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}
	if n := ActiveLocks(); n != before {
		t.Errorf("expected %d registered locks, got %d", before, n)
	}

	// A re-acquired handle is registered again
	if err := lock.Acquire(); err != nil {
		t.Fatalf("failed to re-acquire lock: %v", err)
	}
	if n := ActiveLocks(); n != before+1 {
		t.Errorf("expected %d registered locks after re-acquire, got %d", before+1, n)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}
}
