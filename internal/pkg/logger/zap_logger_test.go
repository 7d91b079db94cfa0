package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "flychain.log")
	l, err := NewZapLogger(Options{FilePath: path, Level: "info"})
	require.NoError(t, err)

	l.Debug("session", "dropped below level", nil)
	l.Info("session", "connected", map[string]interface{}{"mode": "demo"})
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"message":"connected"`)
	assert.Contains(t, lines[0], `"module":"session"`)
	assert.Contains(t, lines[0], `"mode":"demo"`)
	assert.Contains(t, lines[0], `"level":"INFO"`)
}

func TestNewZapLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := NewZapLogger(Options{FilePath: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse log level")
}

func TestErrorAttachesErrorField(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Error("session", "persist session", map[string]interface{}{"error": errors.New("disk full")})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "persist session", entries[0].Message)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
	assert.Equal(t, "session", entries[0].ContextMap()["module"])
}
