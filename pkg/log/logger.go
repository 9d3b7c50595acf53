// Package log wraps log/slog with the small surface semtag needs: a text
// handler on stderr whose level is driven by the CLI's repeatable -d flag.
package log

import (
	"log/slog"
	"os"
	"sync"
)

var (
	logger *slog.Logger
	mu     sync.RWMutex
)

// LevelFor maps the -d occurrence count to a slog level: 0 logs info and
// above, anything higher enables debug output.
func LevelFor(verbosity int) slog.Level {
	if verbosity > 0 {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init configures the package logger for the given verbosity. At verbosity 2
// and above, source locations are attached to every record. Init may be
// called again to change the level.
func Init(verbosity int) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     LevelFor(verbosity),
		AddSource: verbosity >= 2,
	}))
}

func get() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return logger
}

// Debug logs a message at Debug level.
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs a message at Info level.
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs a message at Warn level.
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs a message at Error level.
func Error(msg string, args ...any) { get().Error(msg, args...) }
