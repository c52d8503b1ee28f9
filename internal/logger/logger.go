package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Level defines log severity levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[Level]func(format string, a ...interface{}) string{
	LevelDebug: color.CyanString,
	LevelInfo:  color.BlueString,
	LevelWarn:  color.YellowString,
	LevelError: color.RedString,
}

// Logger writes levelled diagnostics, never results
type Logger struct {
	out       io.Writer
	useColors bool
	level     Level
	now       func() time.Time
}

// New creates a Logger. Verbose starts it at debug level, otherwise warn.
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelWarn
	if verbose {
		level = LevelDebug
	}
	return &Logger{
		out:       out,
		useColors: useColors,
		level:     level,
		now:       time.Now,
	}
}

// WithLevel sets the log level and returns the logger
func (l *Logger) WithLevel(level Level) *Logger {
	l.level = level
	return l
}

// SetLevel sets the level from its name. Unknown names leave it unchanged.
func (l *Logger) SetLevel(name string) {
	if level, ok := ParseLevel(name); ok {
		l.level = level
	}
}

// Level returns the current threshold
func (l *Logger) Level() Level {
	return l.level
}

// ParseLevel converts a level name, case-insensitively
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "none", "off":
		return LevelNone, true
	}
	return LevelInfo, false
}

func (l *Logger) log(level Level, format string, args []interface{}) {
	if level < l.level {
		return
	}
	prefix := levelNames[level]
	if l.useColors {
		prefix = levelColors[level]("%s", prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", l.now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}

// Debug logs a message shown only in verbose mode
func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) { l.log(LevelInfo, format, args) }

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) { l.log(LevelWarn, format, args) }

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args) }
