package unitable

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with unitable-specific helpers so snapshot
// lifecycle events carry consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// This is the default; the snapshot hot path stays silent.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogSnapshot logs the opening of a checkpoint.
func (l *Logger) LogSnapshot(tag string, seq uint64, length int) {
	l.Debug("snapshot opened",
		"tag", tag,
		"seq", seq,
		"length", length,
	)
}

// LogRollback logs a rollback, including how many slots it discarded.
func (l *Logger) LogRollback(tag string, seq uint64, discarded, length int) {
	l.Debug("snapshot rolled back",
		"tag", tag,
		"seq", seq,
		"discarded", discarded,
		"length", length,
	)
}

// LogCommit logs a commit.
func (l *Logger) LogCommit(tag string, seq uint64, length int) {
	l.Debug("snapshot committed",
		"tag", tag,
		"seq", seq,
		"length", length,
	)
}
