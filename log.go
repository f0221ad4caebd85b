package listview

import (
	"log/slog"
	"os"
)

// listLogLevel controls engine log verbosity. Set LISTVIEW_DEBUG=1 to see
// drag/selection state transitions.
var listLogLevel = new(slog.LevelVar)

func init() {
	if os.Getenv("LISTVIEW_DEBUG") != "" {
		listLogLevel.Set(slog.LevelDebug)
	} else {
		listLogLevel.Set(slog.LevelInfo)
	}
}

// listLogger is the logger for list engine debugging.
var listLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: listLogLevel}))

// SetLogLevel adjusts the engine log level at runtime.
func SetLogLevel(level slog.Level) {
	listLogLevel.Set(level)
}
