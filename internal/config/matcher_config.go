package config

import (
	"fmt"
	"time"
)

type MatcherConfig struct {
	MaxResults    int           `mapstructure:"max_results"`
	SourceTimeout time.Duration `mapstructure:"source_timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

func (config MatcherConfig) validate() error {

	if config.MaxResults <= 0 {
		return fmt.Errorf("max results must be greater than zero")
	}

	if config.SourceTimeout <= 0 {
		return fmt.Errorf("source timeout must be greater than zero")
	}

	if config.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must be non-negative")
	}

	return nil
}
