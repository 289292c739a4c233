package triangle

import (
	"log/slog"
	"os"
)

// logLevel controls the package log level.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging (key events and the like).
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// defaultLogger writes to stderr at the shared level.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
