// Package logging provides the host's debug log with file rotation.
//
// The host talks framed JSON on stdout, so nothing here may ever write to
// the standard streams; the debug log goes to a file and is disabled by
// default.
package logging

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds log file configuration.
type Config struct {
	Path       string // Log file path
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Number of old files to keep
	MaxAgeDays int    // Max age in days
}

// DefaultConfig returns sensible defaults for a debug log that is only
// ever enabled while troubleshooting.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		MaxSizeMB:  5,
		MaxBackups: 2,
		MaxAgeDays: 14,
	}
}

// NewRotatingWriter creates a log writer with rotation support.
func NewRotatingWriter(cfg Config) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
}

// NewLogger creates a structured logger that writes to the given writer
// at debug level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Discard returns a logger that drops every record; used whenever the
// debug log is not enabled.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// discardHandler behaves like slog.DiscardHandler, which requires a newer
// Go toolchain than the one this module is built with.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
