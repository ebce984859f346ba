package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the process logger. Production gets JSON output at info
// level, everything else gets text output with debug enabled.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	log = slog.New(handler)
}

func Debug(msg string, keysAndValues ...any) {
	log.Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	log.Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	log.Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	log.Error(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	log.Error(msg, keysAndValues...)
	os.Exit(1)
}
