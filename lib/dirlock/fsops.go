package dirlock

import (
	"errors"
	"io/fs"
	"os"
)

// --------------------------------------------------------------------------
// Filesystem primitives
//
// The acquire loop and the idempotent release logic work on explicit result
// states instead of error-type switching, so "already exists" and "already
// gone" are plain branches and only genuine I/O failures carry an error.
// --------------------------------------------------------------------------

type createResult int

const (
	createCreated createResult = iota // directory was created by this call
	createExists                      // directory already exists, lock is held
	createFailure                     // any other I/O failure
)

// createLockDir attempts to atomically create the lock directory.
// The returned error is only non-nil for createFailure.
func createLockDir(path string) (createResult, error) {
	err := os.Mkdir(path, 0o755)
	switch {
	case err == nil:
		return createCreated, nil
	case errors.Is(err, fs.ErrExist):
		return createExists, nil
	default:
		return createFailure, err
	}
}

type removeResult int

const (
	removeRemoved removeResult = iota // directory was removed by this call
	removeMissing                     // directory was already gone
	removeFailure                     // any other I/O failure
)

// removeLockDir removes the lock directory.
// The returned error is only non-nil for removeFailure.
func removeLockDir(path string) (removeResult, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		return removeRemoved, nil
	case errors.Is(err, fs.ErrNotExist):
		return removeMissing, nil
	default:
		return removeFailure, err
	}
}
