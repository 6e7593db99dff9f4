package fs

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/symdex"
	"github.com/google/renameio"
)

// Ensure ManifestService implements the domain interfaces at compile time.
var (
	_ symdex.ManifestService = (*ManifestService)(nil)
	_ symdex.SymbolFinder    = (*ManifestService)(nil)
)

// ManifestService stores the manifest as an indented JSON file.
type ManifestService struct {
	path string
}

// NewManifestService creates a ManifestService for the file at path.
func NewManifestService(path string) *ManifestService {
	return &ManifestService{path: path}
}

// Path returns the manifest file path.
func (s *ManifestService) Path() string {
	return s.path
}

// WriteManifest atomically replaces the manifest file with m.
func (s *ManifestService) WriteManifest(ctx context.Context, m *symdex.Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Symbols == nil {
		m.Symbols = []*symdex.Symbol{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(s.path, append(data, '\n'), 0644)
}

// ReadManifest loads the manifest file.
// Returns ENOTFOUND if it does not exist and EINVALID if it cannot be decoded.
func (s *ManifestService) ReadManifest(ctx context.Context) (*symdex.Manifest, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, symdex.Errorf(symdex.ENOTFOUND, "%s not found", s.path)
	} else if err != nil {
		return nil, err
	}

	var m symdex.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, symdex.Errorf(symdex.EINVALID, "decoding %s: %v", s.path, err)
	}
	return &m, nil
}

// FindSymbols reads the manifest and returns the symbols matching filter.
func (s *ManifestService) FindSymbols(ctx context.Context, filter *symdex.SymbolFilter) ([]*symdex.Symbol, error) {
	m, err := s.ReadManifest(ctx)
	if err != nil {
		return nil, err
	}
	return symdex.FilterSymbols(m.Symbols, filter), nil
}
