package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a JSON logger on stderr. The dev environment logs at debug
// level unless level says otherwise.
func New(env, level string) *slog.Logger {
	return NewWithWriter(os.Stderr, env, level)
}

func NewWithWriter(w io.Writer, env, level string) *slog.Logger {
	lvl := slog.LevelInfo
	if env == "dev" {
		lvl = slog.LevelDebug
	}
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
