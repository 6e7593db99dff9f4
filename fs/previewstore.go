// Package fs provides file-based storage for manifests and previews.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/symdex"
)

// Ensure PreviewStore implements symdex.PreviewStore at compile time.
var _ symdex.PreviewStore = (*PreviewStore)(nil)

// PreviewStore implements symdex.PreviewStore with staged writes.
// Previews are saved to baseDir/name.tmp and moved into baseDir/name on
// Commit, overwriting files of the same name. Other files in baseDir/name,
// including previews from earlier runs, are left alone.
type PreviewStore struct {
	baseDir string
	name    string
	policy  symdex.CollisionPolicy

	lock *Lock
	used map[string]bool
}

// NewPreviewStore creates a PreviewStore for baseDir/name that resolves
// repeated file names with policy.
func NewPreviewStore(baseDir, name string, policy symdex.CollisionPolicy) *PreviewStore {
	if policy == "" {
		policy = symdex.CollisionOverwrite
	}
	return &PreviewStore{
		baseDir: baseDir,
		name:    name,
		policy:  policy,
		lock:    NewLock(filepath.Join(baseDir, "."+name+".lock")),
	}
}

// Dir returns the final preview directory.
func (s *PreviewStore) Dir() string {
	return s.finalDir()
}

func (s *PreviewStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *PreviewStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Open locks the output location and clears previews left staged by an
// interrupted run. Returns ECONFLICT if another indexer holds the location.
func (s *PreviewStore) Open() error {
	if err := s.lock.TryLock(); err != nil {
		return err
	}
	if err := os.RemoveAll(s.tempDir()); err != nil {
		_ = s.lock.Unlock()
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		_ = s.lock.Unlock()
		return err
	}
	s.used = make(map[string]bool)
	return nil
}

// Save writes p to the staging directory and returns the file name used.
func (s *PreviewStore) Save(ctx context.Context, p *symdex.Preview) (string, error) {
	if s.used == nil {
		return "", symdex.Errorf(symdex.EINVALID, "preview store not open")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.resolveName(p)
	s.used[name] = true

	if err := os.WriteFile(filepath.Join(s.tempDir(), name), p.Content, 0644); err != nil {
		return "", err
	}
	return name, nil
}

// resolveName applies the collision policy to the preview's base name.
func (s *PreviewStore) resolveName(p *symdex.Preview) string {
	base := p.BaseName()
	name := base + ".svg"
	if !s.used[name] {
		return name
	}

	switch s.policy {
	case symdex.CollisionSuffix:
		for n := 2; ; n++ {
			name = base + "_" + strconv.Itoa(n) + ".svg"
			if !s.used[name] {
				return name
			}
		}
	case symdex.CollisionHash:
		// Identical content hashes to the same name and simply overwrites.
		return fmt.Sprintf("%s_%08x.svg", base, xxhash.Sum64(p.Content)>>32)
	}
	return name
}

// Commit moves the staged previews into the final directory and releases
// the output location. The final directory itself is never removed.
func (s *PreviewStore) Commit() error {
	if s.used == nil {
		return symdex.Errorf(symdex.EINVALID, "preview store not open")
	}
	s.used = nil

	err := s.publish()
	if err == nil {
		err = os.RemoveAll(s.tempDir())
	}
	return errors.Join(err, s.lock.Unlock())
}

func (s *PreviewStore) publish() error {
	if err := os.MkdirAll(s.finalDir(), 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(s.tempDir())
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Rename(filepath.Join(s.tempDir(), e.Name()), filepath.Join(s.finalDir(), e.Name())); err != nil {
			return fmt.Errorf("publishing %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Abort discards the staged previews, leaving the final directory as it
// was, and releases the output location.
func (s *PreviewStore) Abort() error {
	s.used = nil
	return errors.Join(os.RemoveAll(s.tempDir()), s.lock.Unlock())
}
