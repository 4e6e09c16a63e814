// Package logger builds the component loggers used across the service.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	gormlogger "gorm.io/gorm/logger"
)

// New creates a charm logger for one component. The level follows the
// global level set by SetLevel.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetLevel sets the global level from a name such as "debug" or "warn".
// Unknown names fall back to info.
func SetLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	return level
}

// ParseGormLevel maps silent, error, warn and info to gorm's levels.
// Anything else is silent.
func ParseGormLevel(name string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return gormlogger.Info
	case "warn", "warning":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

// Gorm routes gorm's SQL logging through a charm logger.
func Gorm(l *log.Logger, level gormlogger.LogLevel) gormlogger.Interface {
	return gormlogger.New(l, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
