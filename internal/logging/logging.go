// Package logging builds the leveled console logger used across todo.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "todo"

// Options holds configuration for the console logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
}

// DefaultOptions returns the options used when nothing is configured:
// warnings and errors only, plain text, no timestamps.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
	}
}

// NewWithOptions creates a logger writing to w.
func NewWithOptions(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// New creates a logger from string configuration values, as read from config files or flags.
func New(w io.Writer, level, format string) *log.Logger {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	opts.ReportTimestamp = opts.Formatter != log.TextFormatter
	return NewWithOptions(w, opts)
}

// Default returns a warn-level text logger on stderr.
func Default() *log.Logger {
	return NewWithOptions(os.Stderr, DefaultOptions())
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWithOptions(io.Discard, DefaultOptions())
}

// ParseLevel parses a string log level. Unknown values fall back to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a string formatter name.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
