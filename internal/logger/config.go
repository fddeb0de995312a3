package logger

import (
	"github.com/aleister1102/discohook/internal/config"
	"github.com/rs/zerolog"
)

// LoggerConfig is the resolved form of config.LogConfig. Console output is
// always on; FilePath adds a rotated log file.
type LoggerConfig struct {
	Level      zerolog.Level
	Format     LogFormat
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// FileEnabled reports whether log lines are also written to FilePath.
func (c LoggerConfig) FileEnabled() bool {
	return c.FilePath != ""
}

// LogFormat selects how log lines are rendered. Values match the
// log_format config key.
type LogFormat string

const (
	FormatJSON    LogFormat = "json"
	FormatConsole LogFormat = "console"
	FormatText    LogFormat = "text"
)

// DefaultLoggerConfig returns the configuration used before WithConfig.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		MaxSizeMB:  config.DefaultMaxLogSizeMB,
		MaxBackups: config.DefaultMaxLogBackups,
	}
}
