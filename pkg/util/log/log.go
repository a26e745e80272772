package log

import (
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	dslog "github.com/grafana/dskit/log"
)

// Logger is a shared go-kit logger.
// Prefer accepting a non-global logger as an argument.
var Logger = kitlog.NewNopLogger()

// InitLogger initialises the global gokit logger writing to stderr and returns
// that logger. logFormat is logfmt or json, logLevel one of debug, info, warn
// or error.
func InitLogger(logFormat, logLevel string) (kitlog.Logger, error) {
	return InitLoggerWithWriter(os.Stderr, logFormat, logLevel)
}

// InitLoggerWithWriter is InitLogger with an explicit destination.
func InitLoggerWithWriter(w io.Writer, logFormat, logLevel string) (kitlog.Logger, error) {
	var lvl dslog.Level
	if err := lvl.Set(logLevel); err != nil {
		return nil, err
	}

	writer := kitlog.NewSyncWriter(w)
	logger := dslog.NewGoKitWithWriter(logFormat, writer)

	// use UTC timestamps and skip 5 stack frames.
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.Caller(5))

	// Must put the level filter last for efficiency.
	logger = level.NewFilter(logger, lvl.Option)

	Logger = logger
	return logger, nil
}
