package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

type loggerKey struct{}

// NewLogger builds the debug logger described by settings. The TUI owns
// the terminal, so records only ever go to log.file; without one they are
// discarded. The returned closer must be called on exit.
func NewLogger(settings models.LogSettings) (*slog.Logger, io.Closer, error) {
	if settings.File == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	f, err := tea.LogToFile(settings.File, "ledger")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", settings.File, err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(settings.Level)})
	return slog.New(handler), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithLogger stores the logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
