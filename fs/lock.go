package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/symdex"
	"github.com/gofrs/flock"
)

// Lock is a cross-process exclusive lock on an output location.
type Lock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// NewLock creates a lock backed by the file at path.
func NewLock(path string) *Lock {
	return &Lock{path: path, flock: flock.New(path)}
}

// TryLock acquires the lock without blocking.
// Returns ECONFLICT if another process holds it.
func (l *Lock) TryLock() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return symdex.Errorf(symdex.ECONFLICT, "%s is locked by another indexer", l.path)
	}
	l.locked = true
	return nil
}

// Unlock releases the lock. Unlocking an unlocked Lock is a no-op.
func (l *Lock) Unlock() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}
