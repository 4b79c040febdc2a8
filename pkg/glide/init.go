// Package glide replaces a surface's native, instantaneous scrolling with a
// continuously animated position that eases toward a target.
//
// A Controller listens to wheel, touch, keyboard and link-activation input
// from an EventSource and animates a Surface through two drivers: a
// per-frame exponential drift for wheel, key and touch input, and a
// fixed-duration tween for anchor navigation. The two never run at once.
//
// Hosts own the event loop. They feed input into a Dispatcher, pump a
// FrameLoop once per displayed frame, and report offset changes back as
// EventScroll so the model stays in sync with the surface.
package glide

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/glide/pkg/glide/constants"
	"github.com/BrandonKowalski/glide/pkg/glide/internal"
)

// Options configures process-wide logging.
type Options struct {
	LogPath  string // Full path for the log file including filename (creates parent directories)
	LogLevel string // Application log level; GLIDE_LOG_LEVEL overrides it when set
	Debug    bool   // Enable debug logging for the controller internals
}

// Init sets up logging. Call it once before creating controllers; without it
// glide logs JSON to stdout at Info (application) and Error (internals).
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)

	if options.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
