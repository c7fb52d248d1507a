package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ScoringProvider string

const (
	ProviderRemote  ScoringProvider = "remote"
	ProviderKeyword ScoringProvider = "keyword"
	ProviderGemini  ScoringProvider = "gemini"
)

type ScoringConfig struct {
	Provider               ScoringProvider `mapstructure:"provider" validate:"required,oneof=remote keyword gemini"`
	AIKey                  string          `mapstructure:"ai_key"`
	AIModel                string          `mapstructure:"ai_model"`
	AIMaxRequestsPerMinute float32         `mapstructure:"ai_max_requests_per_minute" validate:"gte=0"`
	AIMaxRequestsPerDay    float32         `mapstructure:"ai_max_requests_per_day" validate:"gte=0"`
	// CacheTTL of zero disables the score cache.
	CacheTTL time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
}

func (config ScoringConfig) validate() error {
	if err := validate.Struct(config); err != nil {
		return err
	}
	if config.Provider == ProviderGemini && config.AIKey == "" {
		return fmt.Errorf("missing variable: ai_key is required for the gemini provider")
	}
	return nil
}

func (config ScoringConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"scoring.provider": "SCORING_PROVIDER",
		"scoring.ai_key":   "AI_KEY",
		"scoring.ai_model": "AI_MODEL",
	})
}
