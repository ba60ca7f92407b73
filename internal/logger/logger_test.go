package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"invalid", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	assert.Empty(t, buf.String(), "debug and info should be filtered at warn level")

	l.Warn("warn message")
	l.Error("error message")
	output := buf.String()
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogger_FormatsArguments(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelDebug)

	l.Debug("removed file at index %d", 3)
	assert.Contains(t, buf.String(), "removed file at index 3")
}

func TestLogger_Sub(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelDebug)

	sub := l.Sub("wizard")
	sub.Info("stage changed")

	output := buf.String()
	assert.Contains(t, output, "stage changed")
	assert.Contains(t, output, "wizard")
}

func TestLogger_Configure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentforge.log")

	l := New()
	require.NoError(t, l.Configure("debug", path))
	l.Debug("written to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestLogger_ConfigureInvalidLevel(t *testing.T) {
	l := New()
	err := l.Configure("loud", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLogger_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("AGENTFORGE_LOG_FILE", path)
	t.Setenv("AGENTFORGE_LOG_LEVEL", "error")

	l := New()
	l.Warn("not written")
	l.Error("written")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "not written")
	assert.Contains(t, string(data), "written")
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	l := New()
	assert.NoError(t, l.Close())
}
