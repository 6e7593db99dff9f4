// Package index runs the symbol indexing pipeline: it scans a source
// document for panels, stores their previews and writes the manifest.
package index

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/symdex"
)

// Indexer orchestrates one complete rebuild of the catalog.
type Indexer struct {
	Scanner   symdex.PanelScanner
	Previews  symdex.PreviewStore
	Manifests symdex.ManifestService

	// Catalog, if set, receives a copy of every written manifest.
	Catalog symdex.CatalogWriter

	// Now returns the generation time. Defaults to time.Now.
	Now func() time.Time
}

// Index rebuilds the previews and manifest from the document at source.
// Panels without a resolvable label are indexed as symdex.DefaultLabel.
// On error the previous previews are left in place.
func (ix *Indexer) Index(ctx context.Context, source string) (m *symdex.Manifest, err error) {
	panels, err := ix.Scanner.ScanPanels(ctx, source)
	if err != nil {
		return nil, err
	}

	if err := ix.Previews.Open(); err != nil {
		return nil, fmt.Errorf("opening preview store: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = ix.Previews.Abort()
		}
	}()

	symbols := make([]*symdex.Symbol, 0, len(panels))
	for _, p := range panels {
		sym := symdex.NewSymbol(p.Label, p.Origin)
		sym.Preview, err = ix.Previews.Save(ctx, &symdex.Preview{
			Slug:    sym.Slug,
			Index:   p.Index,
			Content: p.Preview,
		})
		if err != nil {
			return nil, fmt.Errorf("saving preview for %q: %w", sym.Label, err)
		}
		symbols = append(symbols, sym)
	}

	m = &symdex.Manifest{
		Source:      filepath.Base(source),
		Total:       len(symbols),
		GeneratedAt: ix.now().UTC(),
		Symbols:     symbols,
	}

	committed = true
	if err := ix.Previews.Commit(); err != nil {
		return nil, fmt.Errorf("committing previews: %w", err)
	}
	if err := ix.Manifests.WriteManifest(ctx, m); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	if ix.Catalog != nil {
		if err := ix.Catalog.ReplaceCatalog(ctx, m); err != nil {
			return nil, fmt.Errorf("updating catalog: %w", err)
		}
	}
	return m, nil
}

func (ix *Indexer) now() time.Time {
	if ix.Now != nil {
		return ix.Now()
	}
	return time.Now()
}
