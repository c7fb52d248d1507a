package config

import (
	"time"

	"github.com/spf13/viper"
)

// FunctionsConfig points at the hosted fetch-jobs, parse-resume and match-jobs functions.
type FunctionsConfig struct {
	BaseURL              string        `mapstructure:"base_url" validate:"required,url"`
	APIKey               string        `mapstructure:"api_key"`
	Timeout              time.Duration `mapstructure:"timeout" validate:"gte=0"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second" validate:"gte=0"`
	Retries              int           `mapstructure:"retries" validate:"gte=0,lte=10"`
	RetryDelay           time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
}

func (config FunctionsConfig) validate() error {
	return validate.Struct(config)
}

func (config FunctionsConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"functions.base_url": "FUNCTIONS_URL",
		"functions.api_key":  "FUNCTIONS_API_KEY",
	})
}
