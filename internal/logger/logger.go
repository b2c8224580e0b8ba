package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu           sync.RWMutex
	globalLogger = newLogger(os.Stderr, false)
)

// Init configures the global logger. Verbose mode enables debug output;
// otherwise info and above are written to stderr.
func Init(verbose bool) {
	InitWithWriter(os.Stderr, verbose)
}

// InitWithWriter is Init with a custom destination
func InitWithWriter(w io.Writer, verbose bool) {
	l := newLogger(w, verbose)

	mu.Lock()
	globalLogger = l
	mu.Unlock()

	slog.SetDefault(l)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// With returns a child logger carrying the given attributes
func With(args ...any) *slog.Logger {
	return current().With(args...)
}

// Debug logs debug messages, visible in verbose mode only
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Info logs progress messages
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn logs recoverable failures
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Error logs failures that stop an operation
func Error(msg string, args ...any) {
	current().Error(msg, args...)
}
