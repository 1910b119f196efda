package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zapcore.Level
	}{
		{name: "defaults to warn", cfg: Config{}, wantLevel: zap.WarnLevel},
		{name: "debug level", cfg: Config{Level: "debug"}, wantLevel: zap.DebugLevel},
		{name: "level is case insensitive", cfg: Config{Level: "ERROR"}, wantLevel: zap.ErrorLevel},
		{name: "bad level falls back to warn", cfg: Config{Level: "loud"}, wantLevel: zap.WarnLevel},
		{name: "json encoding", cfg: Config{Level: "info", Encoding: "json"}, wantLevel: zap.InfoLevel},
		{name: "unknown encoding falls back", cfg: Config{Level: "info", Encoding: "xml"}, wantLevel: zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zap.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestNewWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion.log")
	l, err := New(Config{Level: "info", Encoding: "json", OutputPath: path})
	require.NoError(t, err)

	l.Info("store attached", zap.Int("version", 9))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"store attached"`)
	assert.Contains(t, string(data), `"version":9`)
	assert.Contains(t, string(data), `"level":"INFO"`)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
