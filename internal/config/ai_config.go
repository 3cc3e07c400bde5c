package config

import "github.com/spf13/viper"

const placeholderAIKey = "demo_ai_key"

type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32 `mapstructure:"max_requests_per_day"`
	TopJobs              int     `mapstructure:"top_jobs"`
}

// Configured reports whether the tip enhancer may be constructed at all.
func (config AIConfig) Configured() bool {
	return config.Key != "" && config.Key != placeholderAIKey
}

func (config AIConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("ai.key", "AI_KEY")
}
