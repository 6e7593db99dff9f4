// Package slog provides logging decorators for symdex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symdex"
)

// Ensure LoggingPanelScanner implements symdex.PanelScanner.
var _ symdex.PanelScanner = (*LoggingPanelScanner)(nil)

// LoggingPanelScanner wraps a PanelScanner with logging.
type LoggingPanelScanner struct {
	next   symdex.PanelScanner
	logger *slog.Logger
}

// NewLoggingPanelScanner creates a new LoggingPanelScanner.
func NewLoggingPanelScanner(next symdex.PanelScanner, logger *slog.Logger) *LoggingPanelScanner {
	return &LoggingPanelScanner{next: next, logger: logger}
}

// ScanPanels delegates to the wrapped scanner and logs the operation.
func (s *LoggingPanelScanner) ScanPanels(ctx context.Context, path string) (panels []*symdex.Panel, err error) {
	defer func(begin time.Time) {
		unlabeled := 0
		for _, p := range panels {
			if p.Label == symdex.DefaultLabel {
				unlabeled++
			}
		}
		s.logger.Info("scan panels",
			"path", path,
			"count", len(panels),
			"unlabeled", unlabeled,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScanPanels(ctx, path)
}
