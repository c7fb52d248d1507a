package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type StorageDriver string

const (
	DriverSqlite StorageDriver = "sqlite"
	DriverRedis  StorageDriver = "redis"
)

type StorageConfig struct {
	Driver StorageDriver `mapstructure:"driver" validate:"required,oneof=sqlite redis"`
	// ConnectionString is the sqlite database; saved searches always live there.
	ConnectionString string `mapstructure:"connection_string" validate:"required"`
	RedisURL         string `mapstructure:"redis_url"`
}

func (config StorageConfig) validate() error {
	if err := validate.Struct(config); err != nil {
		return err
	}
	if config.Driver == DriverRedis && config.RedisURL == "" {
		return fmt.Errorf("missing variable: redis_url is required for the redis driver")
	}
	return nil
}

func (config StorageConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"storage.driver":            "STORAGE_DRIVER",
		"storage.connection_string": "DB_CONNECTION_STRING",
		"storage.redis_url":         "REDIS_URL",
	})
}
