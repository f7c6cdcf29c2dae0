package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs a text handler on the default logger. debug widens the
// level so request-by-request logging from the resty middleware shows up.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
