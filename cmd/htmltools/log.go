package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting. The logger writes
// to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logLevel maps the quiet/verbose flags to a log level. Verbose wins when
// both are set.
func logLevel(f *cliFlags) log.Level {
	switch {
	case f.verbose:
		return log.DebugLevel
	case f.quiet:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
