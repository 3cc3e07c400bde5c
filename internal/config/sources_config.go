package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Placeholder credential values shipped in the sample config. A source whose
// credential is absent or a placeholder is treated as unconfigured and is
// never called, which is not a configuration error.
const (
	placeholderAppID  = "demo_app_id"
	placeholderAppKey = "demo_api_key"
	placeholderRapid  = "demo_rapidapi_key"
)

type SourcesConfig struct {
	Adzuna  AdzunaConfig  `mapstructure:"adzuna"`
	JSearch JSearchConfig `mapstructure:"jsearch"`
	TheMuse MuseConfig    `mapstructure:"themuse"`
}

type AdzunaConfig struct {
	AppID                string  `mapstructure:"app_id"`
	AppKey               string  `mapstructure:"app_key"`
	MaxResults           int     `mapstructure:"max_results"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config AdzunaConfig) Configured() bool {
	return config.AppID != "" && config.AppID != placeholderAppID &&
		config.AppKey != "" && config.AppKey != placeholderAppKey
}

type JSearchConfig struct {
	APIKey               string  `mapstructure:"api_key"`
	MaxResults           int     `mapstructure:"max_results"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config JSearchConfig) Configured() bool {
	return config.APIKey != "" && config.APIKey != placeholderRapid
}

type MuseConfig struct {
	Category             string  `mapstructure:"category"`
	MaxResults           int     `mapstructure:"max_results"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config SourcesConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("sources.adzuna.app_id", "ADZUNA_APP_ID"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("sources.adzuna.app_key", "ADZUNA_APP_KEY"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("sources.jsearch.api_key", "RAPIDAPI_KEY"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
