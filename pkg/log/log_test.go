package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "error", want: LogLevelError},
		{in: "warn", want: LogLevelWarn},
		{in: "info", want: LogLevelInfo},
		{in: "debug", want: LogLevelDebug},
		{in: "trace", want: LogLevelTrace},
		{in: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_levelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", 0, LogLevelWarn)

	logger.Debug("hidden %d", 1)
	logger.Warn("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var e map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &e))
	assert.Equal(t, "warn", e["level"])
	assert.Equal(t, "shown 2", e["msg"])
	_, hasComponent := e["component"]
	assert.False(t, hasComponent)
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", 0, LogLevelInfo).Named("game")
	logger.Info("restart")

	var e map[string]string
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &e))
	assert.Equal(t, "game", e["component"])
	assert.Equal(t, "restart", e["msg"])
}

func TestSetDefaultLogger(t *testing.T) {
	previous := Default()
	defer SetDefaultLogger(previous)

	var buf bytes.Buffer
	SetDefaultLogger(New(&buf, "", 0, LogLevelTrace))
	Trace("deep %s", "detail")

	assert.Contains(t, buf.String(), `"msg":"deep detail"`)
}
