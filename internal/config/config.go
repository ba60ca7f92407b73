// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/agentforge/internal/humanize"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the timings and limits the wizard has always shown.
const (
	DefaultCreateDelay    = "2s"
	DefaultMeetingDelay   = "1.5s"
	DefaultMeetingBaseURL = "https://meet.zemo.com"
	DefaultMaxFileSize    = "10MB"
)

// DefaultFileTypes are the suggested knowledge-base extensions.
var DefaultFileTypes = []string{"pdf", "docx", "txt", "csv"}

// Config holds all configuration values for agentforge.
type Config struct {
	CreateDelay        string   `mapstructure:"create_delay" yaml:"create_delay"`
	MeetingDelay       string   `mapstructure:"meeting_delay" yaml:"meeting_delay"`
	MeetingBaseURL     string   `mapstructure:"meeting_base_url" yaml:"meeting_base_url"`
	MaxFileSize        string   `mapstructure:"max_file_size" yaml:"max_file_size"`
	FileTypes          []string `mapstructure:"file_types" yaml:"file_types"`
	KeepDraftOnRestart bool     `mapstructure:"keep_draft_on_restart" yaml:"keep_draft_on_restart"`
	LogLevel           string   `mapstructure:"log_level" yaml:"log_level"`
	LogFile            string   `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		CreateDelay:        DefaultCreateDelay,
		MeetingDelay:       DefaultMeetingDelay,
		MeetingBaseURL:     DefaultMeetingBaseURL,
		MaxFileSize:        DefaultMaxFileSize,
		FileTypes:          append([]string(nil), DefaultFileTypes...),
		KeepDraftOnRestart: true,
		LogLevel:           "info",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("agentforge")

	def := Default()
	v.SetDefault("create_delay", def.CreateDelay)
	v.SetDefault("meeting_delay", def.MeetingDelay)
	v.SetDefault("meeting_base_url", def.MeetingBaseURL)
	v.SetDefault("max_file_size", def.MaxFileSize)
	v.SetDefault("file_types", def.FileTypes)
	v.SetDefault("keep_draft_on_restart", def.KeepDraftOnRestart)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("AGENTFORGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"create_delay",
		"meeting_delay",
		"meeting_base_url",
		"max_file_size",
		"file_types",
		"keep_draft_on_restart",
		"log_level",
		"log_file",
	} {
		if err := v.BindEnv(key, "AGENTFORGE_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		// Need to set config file explicitly for merge
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that durations and sizes parse and are usable.
func (c *Config) Validate() error {
	if _, err := c.CreateDelayDuration(); err != nil {
		return err
	}
	if _, err := c.MeetingDelayDuration(); err != nil {
		return err
	}
	if strings.TrimSpace(c.MeetingBaseURL) == "" {
		return fmt.Errorf("meeting_base_url cannot be empty")
	}
	if _, err := c.MaxFileSizeBytes(); err != nil {
		return err
	}
	return nil
}

// CreateDelayDuration returns the simulated agent creation delay.
func (c *Config) CreateDelayDuration() (time.Duration, error) {
	return parseDelay("create_delay", c.CreateDelay, DefaultCreateDelay)
}

// MeetingDelayDuration returns the simulated meeting generation delay.
func (c *Config) MeetingDelayDuration() (time.Duration, error) {
	return parseDelay("meeting_delay", c.MeetingDelay, DefaultMeetingDelay)
}

// MaxFileSizeBytes returns the advisory per-file size limit in bytes.
func (c *Config) MaxFileSizeBytes() (int64, error) {
	s := c.MaxFileSize
	if s == "" {
		s = DefaultMaxFileSize
	}
	n, err := humanize.ParseFileSize(s)
	if err != nil {
		return 0, fmt.Errorf("invalid max_file_size: %w", err)
	}
	return n, nil
}

// Extensions returns the suggested file extensions with a leading dot,
// lower-cased.
func (c *Config) Extensions() []string {
	types := c.FileTypes
	if len(types) == 0 {
		types = DefaultFileTypes
	}
	exts := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, ".") {
			t = "." + t
		}
		exts = append(exts, t)
	}
	return exts
}

func parseDelay(key, value, fallback string) (time.Duration, error) {
	if value == "" {
		value = fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, value)
	}
	return d, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/agentforge/agentforge.yml or $XDG_CONFIG_HOME/agentforge/agentforge.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "agentforge", "agentforge.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "agentforge", "agentforge.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "agentforge.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
