package filelock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLockAndUnlock(t *testing.T) {
	dir := t.TempDir()
	lock := New(dir)

	acquired, err := lock.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired)

	// Lock file lives inside the directory.
	assert.Equal(t, filepath.Join(dir, LockFileName), lock.Path())
	_, err = os.Stat(lock.Path())
	assert.NoError(t, err)

	require.NoError(t, lock.Unlock())
}

func TestSecondLockBlocked(t *testing.T) {
	dir := t.TempDir()

	first := New(dir)
	acquired, err := first.TryLock()
	require.NoError(t, err)
	require.True(t, acquired)
	defer first.Unlock()

	// flock is per-file-descriptor, so a second handle in the same
	// process must fail to acquire.
	second := New(dir)
	acquired, err = second.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestLockReleasedIsReacquirable(t *testing.T) {
	dir := t.TempDir()

	first := New(dir)
	acquired, err := first.TryLock()
	require.NoError(t, err)
	require.True(t, acquired)
	require.NoError(t, first.Unlock())

	second := New(dir)
	acquired, err = second.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired)
	require.NoError(t, second.Unlock())
}
