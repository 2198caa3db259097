package logger

import (
	"log/slog"
	"os"
)

// New builds the process logger. Dev gets debug level, everything else
// info; output is JSON on stdout either way.
func New(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
