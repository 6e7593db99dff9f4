package mock

import (
	"context"

	"github.com/fwojciec/symdex"
)

// Compile-time interface verification.
var (
	_ symdex.ManifestService = (*ManifestService)(nil)
	_ symdex.SymbolFinder    = (*SymbolFinder)(nil)
	_ symdex.CatalogWriter   = (*CatalogWriter)(nil)
)

// ManifestService is a mock implementation of symdex.ManifestService.
type ManifestService struct {
	WriteManifestFn func(ctx context.Context, m *symdex.Manifest) error
	ReadManifestFn  func(ctx context.Context) (*symdex.Manifest, error)
}

func (s *ManifestService) WriteManifest(ctx context.Context, m *symdex.Manifest) error {
	return s.WriteManifestFn(ctx, m)
}

func (s *ManifestService) ReadManifest(ctx context.Context) (*symdex.Manifest, error) {
	return s.ReadManifestFn(ctx)
}

// SymbolFinder is a mock implementation of symdex.SymbolFinder.
type SymbolFinder struct {
	FindSymbolsFn func(ctx context.Context, filter *symdex.SymbolFilter) ([]*symdex.Symbol, error)
}

func (f *SymbolFinder) FindSymbols(ctx context.Context, filter *symdex.SymbolFilter) ([]*symdex.Symbol, error) {
	return f.FindSymbolsFn(ctx, filter)
}

// CatalogWriter is a mock implementation of symdex.CatalogWriter.
type CatalogWriter struct {
	ReplaceCatalogFn func(ctx context.Context, m *symdex.Manifest) error
}

func (w *CatalogWriter) ReplaceCatalog(ctx context.Context, m *symdex.Manifest) error {
	return w.ReplaceCatalogFn(ctx, m)
}
