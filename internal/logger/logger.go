package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/config"
)

// New builds the application logger writing to w. The terminal UI owns
// stdout, so callers pass a log file or stderr.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if strings.ToLower(cfg.AppEnv) == "production" {
		// JSON format
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Human-readable format
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}
