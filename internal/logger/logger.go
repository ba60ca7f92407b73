package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level represents a log level
type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

// ParseLevel parses a log level string
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger is a leveled logger backed by zerolog.
// Output is discarded unless a log file or writer is configured, since the
// wizard owns the terminal.
type Logger struct {
	mu        sync.Mutex
	level     Level
	out       io.Writer
	file      *os.File
	component string
	zl        zerolog.Logger
}

var (
	// Default is the default logger instance
	Default *Logger
)

func init() {
	Default = New()
}

// New creates a new logger based on environment variables
func New() *Logger {
	l := &Logger{
		level: LevelInfo,
		out:   io.Discard,
	}

	if levelStr := os.Getenv("AGENTFORGE_LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			l.level = level
		}
	}

	if logFile := os.Getenv("AGENTFORGE_LOG_FILE"); logFile != "" {
		if f, err := openLogFile(logFile); err == nil {
			l.file = f
			l.out = f
		}
	}

	l.rebuild()
	return l
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// rebuild recreates the zerolog logger from the current settings.
// Caller must hold mu (or own l exclusively).
func (l *Logger) rebuild() {
	zl := zerolog.New(l.out).With().Timestamp()
	if l.component != "" {
		zl = zl.Str("component", l.component)
	}
	l.zl = zl.Logger().Level(l.level)
}

// Configure applies level and file settings loaded from config.
// An empty level or file leaves the current setting untouched.
func (l *Logger) Configure(level, file string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level != "" {
		parsed, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.level = parsed
	}

	if file != "" {
		f, err := openLogFile(file)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		if l.file != nil {
			_ = l.file.Close()
		}
		l.file = f
		l.out = f
	}

	l.rebuild()
	return nil
}

// Close closes the logger and any open file handles
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.out = io.Discard
		l.rebuild()
		return err
	}
	return nil
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.rebuild()
}

// SetOutput sets the output writer. A zerolog.ConsoleWriter is used so
// lines stay readable when tailing the file.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	l.rebuild()
}

// Sub returns a child logger tagged with a component name. The child shares
// the parent's output and level at the time of the call.
func (l *Logger) Sub(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	child := &Logger{
		level:     l.level,
		out:       l.out,
		component: component,
	}
	child.rebuild()
	return child
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.event(LevelDebug).Msgf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.event(LevelInfo).Msgf(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.event(LevelWarn).Msgf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.event(LevelError).Msgf(format, v...)
}

func (l *Logger) event(level Level) *zerolog.Event {
	l.mu.Lock()
	zl := l.zl
	l.mu.Unlock()
	return zl.WithLevel(level)
}

// Package-level functions that use the default logger

// Debug logs a debug message using the default logger
func Debug(format string, v ...interface{}) {
	Default.Debug(format, v...)
}

// Info logs an info message using the default logger
func Info(format string, v ...interface{}) {
	Default.Info(format, v...)
}

// Warn logs a warning message using the default logger
func Warn(format string, v ...interface{}) {
	Default.Warn(format, v...)
}

// Error logs an error message using the default logger
func Error(format string, v ...interface{}) {
	Default.Error(format, v...)
}

// Configure applies config settings to the default logger
func Configure(level, file string) error {
	return Default.Configure(level, file)
}

// Close closes the default logger
func Close() error {
	return Default.Close()
}
