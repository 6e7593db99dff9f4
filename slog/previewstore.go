package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/symdex"
)

// Ensure LoggingPreviewStore implements symdex.PreviewStore.
var _ symdex.PreviewStore = (*LoggingPreviewStore)(nil)

// LoggingPreviewStore wraps a PreviewStore with debug logging.
type LoggingPreviewStore struct {
	next   symdex.PreviewStore
	logger *slog.Logger
}

// NewLoggingPreviewStore creates a new LoggingPreviewStore.
func NewLoggingPreviewStore(next symdex.PreviewStore, logger *slog.Logger) *LoggingPreviewStore {
	return &LoggingPreviewStore{next: next, logger: logger}
}

// Open delegates to the wrapped store.
func (s *LoggingPreviewStore) Open() error {
	err := s.next.Open()
	s.logger.Info("preview open", "err", err)
	return err
}

// Save delegates to the wrapped store and logs the file name used.
func (s *LoggingPreviewStore) Save(ctx context.Context, p *symdex.Preview) (name string, err error) {
	defer func() {
		s.logger.Debug("preview save",
			"slug", p.Slug,
			"index", p.Index,
			"file", name,
			"bytes", len(p.Content),
			"err", err,
		)
	}()
	return s.next.Save(ctx, p)
}

// Commit delegates to the wrapped store.
func (s *LoggingPreviewStore) Commit() error {
	err := s.next.Commit()
	s.logger.Info("preview commit", "err", err)
	return err
}

// Abort delegates to the wrapped store.
func (s *LoggingPreviewStore) Abort() error {
	err := s.next.Abort()
	s.logger.Info("preview abort", "err", err)
	return err
}
