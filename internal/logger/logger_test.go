package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"storefront-service/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("whatever"))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var stdout bytes.Buffer
	log := newLogger(config.LogConfig{Level: "info", Format: "json", File: path, MaxSizeMB: 1}, zapcore.AddSync(&stdout))

	log.Info("hello from test")
	log.Debug("below level")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.NotContains(t, string(data), "below level")
	assert.Contains(t, stdout.String(), `"msg":"hello from test"`)
}

func TestNew_ConsoleFormat(t *testing.T) {
	var stdout bytes.Buffer
	log := newLogger(config.LogConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&stdout))

	log.Debug("console line")

	assert.Contains(t, stdout.String(), "console line")
	assert.NotContains(t, stdout.String(), `"msg"`)
}
