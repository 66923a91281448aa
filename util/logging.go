package util

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const LevelTrace slog.Level = slog.LevelDebug - 4

// LoggingEnabled turns on trace output. Logs always go to stderr since the
// language server owns stdout.
var LoggingEnabled = false

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LevelTrace}))

// SetOutput redirects trace output. It must never be stdout while the
// language server runs over stdio.
func SetOutput(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: LevelTrace}))
}

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	logger.Log(context.Background(), LevelTrace, fmt.Sprintf(format, args...))
}

func Trace(msg string, args ...any) {
	if !LoggingEnabled {
		return
	}
	logger.Log(context.Background(), LevelTrace, msg, args...)
}
