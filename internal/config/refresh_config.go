package config

import (
	"time"

	"github.com/spf13/viper"
)

type RefreshConfig struct {
	// Schedule is a cron spec; empty disables the periodic refresh.
	Schedule string   `mapstructure:"schedule"`
	Query    string   `mapstructure:"query"`
	Sources  []string `mapstructure:"sources"`
	Limit    int      `mapstructure:"limit" validate:"gte=0"`
	// AlertRetention is how long alert records are kept before a job may alert again.
	AlertRetention time.Duration `mapstructure:"alert_retention" validate:"gt=0"`
}

func (config RefreshConfig) validate() error {
	return validate.Struct(config)
}

func (config RefreshConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"refresh.schedule": "REFRESH_SCHEDULE",
		"refresh.query":    "REFRESH_QUERY",
		"refresh.sources":  "REFRESH_SOURCES",
	})
}
