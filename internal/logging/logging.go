// Package logging provides request-trace logging with optional file rotation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds log file configuration.
type Config struct {
	Path       string // Log file path
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Number of old files to keep
	MaxAgeDays int    // Max age in days
	Compress   bool   // Compress old files
}

// DefaultConfig returns sensible defaults for log rotation.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// NewRotatingWriter creates a log writer with rotation support.
func NewRotatingWriter(cfg Config) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// NewLogger creates a structured logger that writes to the given writer.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return NewLogger(io.Discard, slog.LevelError)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the CLI logger. A non-empty logFile wins and gets debug
// level output with rotation; otherwise debug sends debug output to stderr
// and the default is to discard. The returned closer must be closed on exit.
func Setup(logFile string, debug bool, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	switch {
	case logFile != "":
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, nil, err
		}
		w := NewRotatingWriter(DefaultConfig(logFile))
		return NewLogger(w, slog.LevelDebug), w, nil
	case debug:
		return NewLogger(stderr, slog.LevelDebug), nopCloser{}, nil
	default:
		return Discard(), nopCloser{}, nil
	}
}
