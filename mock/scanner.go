package mock

import (
	"context"

	"github.com/fwojciec/symdex"
)

var _ symdex.PanelScanner = (*PanelScanner)(nil)

// PanelScanner is a mock implementation of symdex.PanelScanner.
type PanelScanner struct {
	ScanPanelsFn func(ctx context.Context, path string) ([]*symdex.Panel, error)
}

func (s *PanelScanner) ScanPanels(ctx context.Context, path string) ([]*symdex.Panel, error) {
	return s.ScanPanelsFn(ctx, path)
}
