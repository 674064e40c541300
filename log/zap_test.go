package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.log")
	logger, err := New("warn", path)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", zap.String("track", "speedway"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.Contains(t, string(data), `"track":"speedway"`)
	assert.NotContains(t, string(data), "dropped")
}

func TestInitRejectsBadLevel(t *testing.T) {
	before := Logger
	assert.Error(t, Init("loud", ""))
	assert.Same(t, before, Logger)
}
