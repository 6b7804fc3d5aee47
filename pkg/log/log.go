// Package log is a small leveled logging front end over log/slog. Output is
// discarded unless a sink is configured; the screen owns stdout, so log
// output goes to a file, never to the terminal the application is drawing on.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu   sync.Mutex
	out  io.Writer = io.Discard
	file *os.File
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput directs log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// OpenFile directs log output to the named file, appending to it.
func OpenFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
	}
	file = f
	out = f
	return nil
}

// Close releases the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	out = io.Discard
}

func logf(l slog.Level, tag, format string, args ...any) {
	if slog.Level(level.Load()) > l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "["+tag+"] "+format+"\n", args...)
}

// Debugf logs a debug message if the level allows it.
func Debugf(format string, args ...any) {
	logf(LevelDebug, "DEBUG", format, args...)
}

// Infof logs an info message if the level allows it.
func Infof(format string, args ...any) {
	logf(LevelInfo, "INFO", format, args...)
}

// Warnf logs a warning message if the level allows it.
func Warnf(format string, args ...any) {
	logf(LevelWarn, "WARN", format, args...)
}

// Errorf logs an error message if the level allows it.
func Errorf(format string, args ...any) {
	logf(LevelError, "ERROR", format, args...)
}
