package flocker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_LockUnlock(t *testing.T) {
	l, err := New(filepath.Join(t.TempDir(), "locks"))
	require.NoError(t, err)

	unlock, err := l.Lock(context.Background(), "nginx_latest_container")
	require.NoError(t, err)
	assert.FileExists(t, l.Path("nginx_latest_container"))

	require.NoError(t, unlock())
	require.NoError(t, unlock())

	unlock, err = l.Lock(context.Background(), "nginx_latest_container")
	require.NoError(t, err)
	require.NoError(t, unlock())
}

func TestLocker_HeldLockBlocksUntilContextEnds(t *testing.T) {
	l, err := New(t.TempDir())
	require.NoError(t, err)

	unlock, err := l.Lock(context.Background(), "app_container")
	require.NoError(t, err)
	defer func() { _ = unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, "app_container")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocker_SecondProcessViewIsExcluded(t *testing.T) {
	dir := t.TempDir()
	a, err := New(dir)
	require.NoError(t, err)
	b, err := New(dir)
	require.NoError(t, err)

	unlock, err := a.Lock(context.Background(), "app_container")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	_, err = b.Lock(ctx, "app_container")
	assert.Error(t, err)

	require.NoError(t, unlock())

	unlockB, err := b.Lock(context.Background(), "app_container")
	require.NoError(t, err)
	require.NoError(t, unlockB())
}

func TestLocker_IndependentNames(t *testing.T) {
	l, err := New(t.TempDir())
	require.NoError(t, err)

	u1, err := l.Lock(context.Background(), "a_container")
	require.NoError(t, err)
	u2, err := l.Lock(context.Background(), "b_container")
	require.NoError(t, err)

	assert.NoError(t, u1())
	assert.NoError(t, u2())
}

func TestLocker_PathSanitizesSeparators(t *testing.T) {
	l, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "a_b_c.lock", filepath.Base(l.Path("a/b:c")))
}
