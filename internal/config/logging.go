package config

import (
	"notehub/pkg/logger"
)

// LoggingConfig holds the logger settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"NOTEHUB_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"NOTEHUB_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment maps the configured mode to a logger environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}
