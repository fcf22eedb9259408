// Package logger provides prefixed charmbracelet/log loggers shared by the
// dictionary, server and CLI packages, so each logs under its own name.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm logger with the given prefix at the global level in
// effect when New is called. The level is copied, not shared: loggers
// created during package initialisation keep that level and do not follow
// a later change of the global level, such as the one the -v flag makes.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
