package symdex

import (
	"context"
	"strconv"
)

// Panel is a symbol panel detected in a source document.
type Panel struct {
	// Index is the panel group's position among all positioned groups
	// of the document, in traversal order.
	Index   int
	Origin  Point
	Label   string
	Preview []byte // standalone SVG without label text
}

// PanelScanner detects and extracts panels from a source document.
type PanelScanner interface {
	// ScanPanels returns the document's panels in traversal order.
	// Returns ENOTFOUND if the document does not exist.
	ScanPanels(ctx context.Context, path string) ([]*Panel, error)
}

// Preview is a preview fragment waiting to be stored.
type Preview struct {
	Slug    string
	Index   int
	Content []byte
}

// BaseName returns the preview file stem: the slug, or a positional name
// when the slug is empty.
func (p *Preview) BaseName() string {
	if p.Slug != "" {
		return p.Slug
	}
	return "symbol_" + strconv.Itoa(p.Index)
}

// PreviewStore persists previews with atomic rebuild semantics.
// Open acquires the output location; Save writes to a staging area;
// Commit replaces the previous output; Abort discards staged previews.
// Either Commit or Abort releases the location.
type PreviewStore interface {
	Open() error
	Save(ctx context.Context, p *Preview) (name string, err error)
	Commit() error
	Abort() error
}
