package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symdex"
)

// Ensure LoggingSymbolFinder implements symdex.SymbolFinder.
var _ symdex.SymbolFinder = (*LoggingSymbolFinder)(nil)

// LoggingSymbolFinder wraps a SymbolFinder with logging.
type LoggingSymbolFinder struct {
	next   symdex.SymbolFinder
	logger *slog.Logger
}

// NewLoggingSymbolFinder creates a new LoggingSymbolFinder.
func NewLoggingSymbolFinder(next symdex.SymbolFinder, logger *slog.Logger) *LoggingSymbolFinder {
	return &LoggingSymbolFinder{next: next, logger: logger}
}

// FindSymbols delegates to the wrapped finder and logs the operation.
func (f *LoggingSymbolFinder) FindSymbols(ctx context.Context, filter *symdex.SymbolFilter) (symbols []*symdex.Symbol, err error) {
	defer func(begin time.Time) {
		var terms []string
		if filter != nil {
			terms = filter.Terms
		}
		f.logger.Info("find symbols",
			"terms", terms,
			"count", len(symbols),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindSymbols(ctx, filter)
}
