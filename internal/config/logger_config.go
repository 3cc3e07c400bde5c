package config

import "fmt"

type logLevel string

const (
	LevelInfo    logLevel = "INFO"
	LevelDebug   logLevel = "DEBUG"
	LevelWarning logLevel = "WARNING"
	LevelError   logLevel = "ERROR"
)

type LoggerConfig struct {
	LogLevel logLevel `mapstructure:"log_level"`
}

func (config LoggerConfig) validate() error {
	if config.LogLevel == "" {
		return fmt.Errorf("missing variable: log_level")
	}
	return nil
}
