package observability

import (
	"io"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NewLogger creates a logfmt logger on w. Debug lines are kept only when verbose is set.
func NewLogger(w io.Writer, verbose bool) gokitlog.Logger {
	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	logger = gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC)

	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowWarn())
}

// Debug logs keyvals at debug level, ignoring write errors.
func Debug(logger gokitlog.Logger, keyvals ...interface{}) {
	_ = level.Debug(logger).Log(keyvals...)
}

// Warn logs keyvals at warn level, ignoring write errors.
func Warn(logger gokitlog.Logger, keyvals ...interface{}) {
	_ = level.Warn(logger).Log(keyvals...)
}
