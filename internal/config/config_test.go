package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the global config at a temp dir and chdirs into it so
// neither the developer's config nor a stray project file leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Chdir(tmpDir)
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/agentforge/agentforge.yml", GlobalPath())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		assert.True(t, filepath.IsAbs(got), "GlobalPath() should be absolute, got %s", got)
		assert.Equal(t, "agentforge.yml", filepath.Base(got))
	})
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, "agentforge.yml", ProjectPath())
}

func TestExists(t *testing.T) {
	isolate(t)

	require.False(t, Exists(), "no config files yet")

	require.NoError(t, os.WriteFile(ProjectPath(), []byte("log_level: debug\n"), 0644))
	assert.True(t, Exists())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "2s", cfg.CreateDelay)
	assert.Equal(t, "1.5s", cfg.MeetingDelay)
	assert.Equal(t, "https://meet.zemo.com", cfg.MeetingBaseURL)
	assert.Equal(t, "10MB", cfg.MaxFileSize)
	assert.Equal(t, []string{"pdf", "docx", "txt", "csv"}, cfg.FileTypes)
	assert.True(t, cfg.KeepDraftOnRestart)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())

	create, err := cfg.CreateDelayDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, create)

	meeting, err := cfg.MeetingDelayDuration()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, meeting)

	limit, err := cfg.MaxFileSizeBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(10*1024*1024), limit)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	global := Default()
	global.CreateDelay = "3s"
	global.MeetingDelay = "4s"
	global.LogLevel = "warn"
	require.NoError(t, WriteGlobal(global))

	require.NoError(t, os.WriteFile(ProjectPath(), []byte("meeting_delay: 250ms\n"), 0644))

	t.Setenv("AGENTFORGE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3s", cfg.CreateDelay, "global value kept")
	assert.Equal(t, "250ms", cfg.MeetingDelay, "project overrides global")
	assert.Equal(t, "debug", cfg.LogLevel, "env overrides files")
}

func TestLoad_EnvFileTypesAndBool(t *testing.T) {
	isolate(t)
	t.Setenv("AGENTFORGE_KEEP_DRAFT_ON_RESTART", "false")
	t.Setenv("AGENTFORGE_FILE_TYPES", "md,txt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KeepDraftOnRestart)
	assert.Equal(t, []string{".md", ".txt"}, cfg.Extensions())
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(ProjectPath(), []byte("create_delay: [\n"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merging project config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty delays fall back", func(c *Config) { c.CreateDelay, c.MeetingDelay = "", "" }, ""},
		{"zero delay", func(c *Config) { c.CreateDelay = "0s" }, ""},
		{"bad create delay", func(c *Config) { c.CreateDelay = "soon" }, "invalid create_delay"},
		{"negative meeting delay", func(c *Config) { c.MeetingDelay = "-1s" }, "must not be negative"},
		{"empty base url", func(c *Config) { c.MeetingBaseURL = " " }, "meeting_base_url"},
		{"bad size", func(c *Config) { c.MaxFileSize = "huge" }, "invalid max_file_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExtensions(t *testing.T) {
	cfg := &Config{FileTypes: []string{"PDF", ".Docx", " ", "csv"}}
	assert.Equal(t, []string{".pdf", ".docx", ".csv"}, cfg.Extensions())

	empty := &Config{}
	assert.Equal(t, []string{".pdf", ".docx", ".txt", ".csv"}, empty.Extensions())
}

func TestWriteProject(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.KeepDraftOnRestart = false
	cfg.LogFile = "/tmp/agentforge.log"
	require.NoError(t, WriteProject(cfg))

	data, err := os.ReadFile(ProjectPath())
	require.NoError(t, err)

	content := string(data)
	for _, field := range []string{
		"create_delay: 2s",
		"meeting_delay: 1.5s",
		"meeting_base_url: https://meet.zemo.com",
		"max_file_size: 10MB",
		"keep_draft_on_restart: false",
		"log_file: /tmp/agentforge.log",
		"- pdf",
	} {
		assert.Contains(t, content, field)
	}
}

func TestWriteGlobal_CreatesDirectory(t *testing.T) {
	isolate(t)

	require.NoError(t, WriteGlobal(Default()))
	_, err := os.Stat(GlobalPath())
	require.NoError(t, err)
}
