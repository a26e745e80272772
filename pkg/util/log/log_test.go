package log

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerFiltersLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := InitLoggerWithWriter(buf, "logfmt", "warn")
	require.NoError(t, err)

	level.Info(logger).Log("msg", "hidden")
	require.Empty(t, buf.String())

	level.Warn(logger).Log("msg", "shown")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "level=warn")
	require.Equal(t, logger, Logger)
}

func TestInitLoggerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := InitLoggerWithWriter(buf, "json", "debug")
	require.NoError(t, err)

	level.Debug(logger).Log("msg", "hello")
	require.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestInitLoggerBadLevel(t *testing.T) {
	_, err := InitLoggerWithWriter(&bytes.Buffer{}, "logfmt", "loud")
	require.Error(t, err)
}
