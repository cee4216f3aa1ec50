// Package logging builds the structured loggers used across the API.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options controls how a logger is built
type Options struct {
	Level  string
	JSON   bool
	Writer io.Writer
	Prefix string
}

// New creates a [log.Logger] with timestamps enabled.
//
// The writer defaults to [os.Stderr]. Unknown levels fall back to info.
func New(opts Options) *log.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           ParseLevel(opts.Level),
	})
	if opts.JSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

// ParseLevel converts a level name into a [log.Level]
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Discard returns a logger that drops every entry
func Discard() *log.Logger {
	return log.New(io.Discard)
}
