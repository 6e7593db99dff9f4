package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symdex"
)

// Ensure LoggingManifestService implements symdex.ManifestService.
var _ symdex.ManifestService = (*LoggingManifestService)(nil)

// LoggingManifestService wraps a ManifestService with logging.
type LoggingManifestService struct {
	next   symdex.ManifestService
	logger *slog.Logger
}

// NewLoggingManifestService creates a new LoggingManifestService.
func NewLoggingManifestService(next symdex.ManifestService, logger *slog.Logger) *LoggingManifestService {
	return &LoggingManifestService{next: next, logger: logger}
}

// WriteManifest delegates to the wrapped service and logs the operation.
func (s *LoggingManifestService) WriteManifest(ctx context.Context, m *symdex.Manifest) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("manifest write",
			"source", m.Source,
			"total", m.Total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteManifest(ctx, m)
}

// ReadManifest delegates to the wrapped service and logs the operation.
func (s *LoggingManifestService) ReadManifest(ctx context.Context) (m *symdex.Manifest, err error) {
	defer func(begin time.Time) {
		total := 0
		if m != nil {
			total = m.Total
		}
		s.logger.Info("manifest read",
			"total", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadManifest(ctx)
}
