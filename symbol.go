package symdex

import (
	"context"
	"time"
)

// Panel template geometry. Every panel in a source document is drawn on a
// fixed 600x400 canvas whose border sits 5 units inside the edge.
const (
	PanelWidth  = 600
	PanelHeight = 400
	PanelInset  = 5
)

// DefaultLabel is used when a panel has no resolvable label.
const DefaultLabel = "unlabeled"

// Point is an offset in document coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box in document coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Symbol is one catalog entry, describing a single detected panel.
type Symbol struct {
	Slug      string `json:"slug"`
	Label     string `json:"label"`
	Transform Point  `json:"transform"`
	BBox      Rect   `json:"bbox"`
	Panel     Rect   `json:"panel"`

	// Preview is the file name the preview was written under, relative to
	// the preview directory. Empty for manifests written by older indexers.
	Preview string `json:"preview,omitempty"`
}

// NewSymbol returns a symbol for a panel at origin with the given label.
// The slug, panel box and inner bbox are derived from the arguments.
func NewSymbol(label string, origin Point) *Symbol {
	return &Symbol{
		Slug:      Slugify(label),
		Label:     label,
		Transform: origin,
		BBox: Rect{
			X:      origin.X + PanelInset,
			Y:      origin.Y + PanelInset,
			Width:  PanelWidth - 2*PanelInset,
			Height: PanelHeight - 2*PanelInset,
		},
		Panel: Rect{
			X:      origin.X,
			Y:      origin.Y,
			Width:  PanelWidth,
			Height: PanelHeight,
		},
	}
}

// PreviewName returns the preview file name for the symbol. Manifests
// without a recorded name fall back to the slug.
func (s *Symbol) PreviewName() string {
	if s.Preview != "" {
		return s.Preview
	}
	return s.Slug + ".svg"
}

// Validate returns an error if the symbol breaks the panel geometry.
func (s *Symbol) Validate() error {
	if s.Label == "" {
		return Errorf(EINVALID, "symbol label required")
	}
	if s.Panel.Width != PanelWidth || s.Panel.Height != PanelHeight {
		return Errorf(EINVALID, "symbol %q panel must be %dx%d", s.Slug, PanelWidth, PanelHeight)
	}
	if s.BBox.X != s.Panel.X+PanelInset || s.BBox.Y != s.Panel.Y+PanelInset ||
		s.BBox.Width != PanelWidth-2*PanelInset || s.BBox.Height != PanelHeight-2*PanelInset {
		return Errorf(EINVALID, "symbol %q bbox must be the panel inset by %d", s.Slug, PanelInset)
	}
	return nil
}

// Manifest is the aggregate output of one indexing run.
type Manifest struct {
	Source      string    `json:"source"`
	Total       int       `json:"total"`
	GeneratedAt time.Time `json:"generatedAt"`
	Symbols     []*Symbol `json:"symbols"`
}

// Validate returns an error if the manifest is internally inconsistent.
func (m *Manifest) Validate() error {
	if m.Source == "" {
		return Errorf(EINVALID, "manifest source required")
	}
	if m.Total != len(m.Symbols) {
		return Errorf(EINVALID, "manifest total %d does not match %d symbols", m.Total, len(m.Symbols))
	}
	for _, s := range m.Symbols {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ManifestService reads and writes the manifest.
type ManifestService interface {
	// WriteManifest replaces any existing manifest with m.
	WriteManifest(ctx context.Context, m *Manifest) error

	// ReadManifest loads the manifest.
	// Returns ENOTFOUND if no manifest has been written.
	ReadManifest(ctx context.Context) (*Manifest, error)
}

// SymbolFinder finds catalog symbols.
type SymbolFinder interface {
	// FindSymbols returns symbols matching the filter in catalog order.
	FindSymbols(ctx context.Context, filter *SymbolFilter) ([]*Symbol, error)
}

// CatalogWriter mirrors a manifest into secondary storage.
type CatalogWriter interface {
	// ReplaceCatalog discards the previous catalog and stores m.
	ReplaceCatalog(ctx context.Context, m *Manifest) error
}
