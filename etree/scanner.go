package etree

import (
	"context"

	"github.com/fwojciec/symdex"
)

// Ensure Scanner implements symdex.PanelScanner at compile time.
var _ symdex.PanelScanner = (*Scanner)(nil)

// Scanner loads an SVG document and extracts its panels.
type Scanner struct {
	Detector *Detector
	Labels   *LabelExtractor
	Exporter *Exporter
}

// NewScanner returns a Scanner with literal border detection and English
// labels.
func NewScanner() *Scanner {
	return &Scanner{
		Detector: NewDetector(LiteralBorder{}),
		Labels:   NewLabelExtractor(),
		Exporter: NewExporter(),
	}
}

// ScanPanels implements symdex.PanelScanner.
func (s *Scanner) ScanPanels(ctx context.Context, path string) ([]*symdex.Panel, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	var panels []*symdex.Panel
	for _, d := range s.Detector.Detect(doc.Root()) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		preview, err := s.Exporter.Export(d.Element)
		if err != nil {
			return nil, err
		}
		panels = append(panels, &symdex.Panel{
			Index:   d.Index,
			Origin:  d.Origin,
			Label:   s.Labels.Extract(d.Element),
			Preview: preview,
		})
	}
	return panels, nil
}
