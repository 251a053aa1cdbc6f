package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/entomoguide-backend/internal/config"
)

// NewLogger builds the process logger and installs it as slog's default.
// Format "text" adds source locations for local development; anything else
// is JSON. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("app", "entomoguide"))
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
