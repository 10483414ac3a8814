package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// SetupLogging installs the default logger: a tint handler on stderr, at
// debug level when -v is set.
func SetupLogging() {
	slog.SetDefault(newLogger(os.Stderr, *verbose))
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}
