// Package flocker provides per-container-name locks backed by flock(2), so
// two processes never run the same acquisition at once.
package flocker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/dockside/dockside/internal/boundaries/out"
)

const retryDelay = 100 * time.Millisecond

var _ out.NameLocker = (*Locker)(nil)

// Locker hands out one lock file per name under dir.
type Locker struct {
	dir string

	mu     sync.Mutex
	tokens map[string]chan struct{}
}

// New creates a Locker storing lock files in dir, creating it if needed.
func New(dir string) (*Locker, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create lock directory %s: %w", dir, err)
	}
	return &Locker{dir: dir, tokens: make(map[string]chan struct{})}, nil
}

// Path returns the lock file used for name.
func (l *Locker) Path(name string) string {
	safe := strings.NewReplacer("/", "_", `\`, "_", ":", "_").Replace(name)
	return filepath.Join(l.dir, safe+".lock")
}

// token returns the in-process token channel for name. Holding the token
// keeps goroutines of this process from racing on the same file.
func (l *Locker) token(name string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.tokens[name]
	if !ok {
		ch = make(chan struct{}, 1)
		l.tokens[name] = ch
	}
	return ch
}

// Lock blocks until the lock for name is held or ctx is cancelled.
func (l *Locker) Lock(ctx context.Context, name string) (func() error, error) {
	path := l.Path(name)
	tok := l.token(name)

	select {
	case tok <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("acquire lock %s: %w", path, ctx.Err())
	}

	fl := flock.New(path)
	locked, err := fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		<-tok
		return nil, fmt.Errorf("acquire flock %s: %w", path, err)
	}
	if !locked {
		<-tok
		return nil, fmt.Errorf("acquire flock %s: %w", path, ctx.Err())
	}

	var once sync.Once
	var unlockErr error
	return func() error {
		once.Do(func() {
			if err := fl.Unlock(); err != nil {
				unlockErr = fmt.Errorf("release flock %s: %w", path, err)
			}
			<-tok
		})
		return unlockErr
	}, nil
}
