// Package filelock provides process-level locking for a sweep directory so
// two concurrent runs cannot race each other's deletions.
package filelock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the lock file created inside the directory being swept.
const LockFileName = ".appsweep.lock"

// DirLock is an advisory exclusive lock on a sweep directory.
type DirLock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock for the given directory. The lock file is created
// inside the directory itself so the lock travels with it.
func New(dir string) *DirLock {
	path := filepath.Join(dir, LockFileName)
	return &DirLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path.
func (dl *DirLock) Path() string {
	return dl.path
}

// TryLock attempts to acquire the lock without blocking. Returns true if
// the lock was acquired, false if another process holds it.
func (dl *DirLock) TryLock() (bool, error) {
	acquired, err := dl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", dl.path, err)
	}
	return acquired, nil
}

// Lock acquires the lock, blocking until it is available.
func (dl *DirLock) Lock() error {
	if err := dl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", dl.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (dl *DirLock) Unlock() error {
	if err := dl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", dl.path, err)
	}
	return nil
}
