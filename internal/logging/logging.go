// Package logging builds the charmbracelet/log logger used across dotmaze.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultDebugLevel is the verbosity used when none is given.
const DefaultDebugLevel = 3

// Options controls where logs go and how much is written.
type Options struct {
	TracePath  string    // file to append logs to, empty for none
	DebugLevel int       // 0 silent, 1 error, 2 warn, 3-4 info, 5+ debug
	Prefix     string    // logger prefix
	Stderr     bool      // also write to stderr
	Writer     io.Writer // overrides stderr, used by tests
}

// LevelFor maps a debug level to a log level. It returns false when
// logging is switched off entirely.
func LevelFor(debugLevel int) (log.Level, bool) {
	switch {
	case debugLevel <= 0:
		return log.FatalLevel, false
	case debugLevel == 1:
		return log.ErrorLevel, true
	case debugLevel == 2:
		return log.WarnLevel, true
	case debugLevel <= 4:
		return log.InfoLevel, true
	default:
		return log.DebugLevel, true
	}
}

// New creates a logger. The returned closer releases the trace file and is
// never nil.
func New(opts Options) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	level, enabled := LevelFor(opts.DebugLevel)
	if !enabled {
		return Discard(), noop, nil
	}

	var writers []io.Writer
	closer := noop

	if opts.TracePath != "" {
		if dir := filepath.Dir(opts.TracePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, noop, fmt.Errorf("logging: create trace directory: %w", err)
			}
		}
		f, err := os.OpenFile(opts.TracePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("logging: open trace file: %w", err)
		}
		writers = append(writers, f)
		closer = f.Close
	}

	switch {
	case opts.Writer != nil:
		writers = append(writers, opts.Writer)
	case opts.Stderr:
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		return Discard(), closer, nil
	}

	logger := log.NewWithOptions(io.MultiWriter(writers...), log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that writes nothing.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
