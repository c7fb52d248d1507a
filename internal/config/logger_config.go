package config

import (
	"github.com/spf13/viper"
)

type LogLevel string

const (
	LevelInfo    LogLevel = "INFO"
	LevelDebug   LogLevel = "DEBUG"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
	LevelFatal   LogLevel = "FATAL"
)

type LoggerConfig struct {
	LogLevel     LogLevel `mapstructure:"log_level" validate:"required,oneof=INFO DEBUG WARNING ERROR FATAL"`
	AppName      string   `mapstructure:"app_name" validate:"required"`
	LokiURL      string   `mapstructure:"loki_url" validate:"omitempty,url"`
	LokiUser     string   `mapstructure:"loki_user"`
	LokiPassword string   `mapstructure:"loki_password"`
	// OutputFile is optional, logs always go to stdout.
	OutputFile string `mapstructure:"output_file"`
}

func (config LoggerConfig) validate() error {
	return validate.Struct(config)
}

func (config LoggerConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"logger.loki_url":      "LOKI_URL",
		"logger.loki_user":     "LOKI_USER",
		"logger.loki_password": "LOKI_PASSWORD",
		"logger.app_name":      "APP_NAME",
		"logger.log_level":     "LOG_LEVEL",
		"logger.output_file":   "LOG_FILE",
	})
}
