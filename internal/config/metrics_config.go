package config

import (
	"fmt"
	"net"

	"github.com/spf13/viper"
)

// MetricsConfig.Address of "" keeps the /metrics server off.
type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

func (config MetricsConfig) validate() error {
	if config.Address == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Address); err != nil {
		return fmt.Errorf("invalid address %q: %w", config.Address, err)
	}
	return nil
}

func (config MetricsConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("metrics.address", "METRICS_ADDRESS")
}
