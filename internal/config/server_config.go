package config

import "fmt"

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

func (config ServerConfig) validate() error {

	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("port must be in (0, 65535]")
	}

	if config.MetricsPort <= 0 || config.MetricsPort > 65535 {
		return fmt.Errorf("metrics port must be in (0, 65535]")
	}

	if config.Port == config.MetricsPort {
		return fmt.Errorf("port and metrics port must differ")
	}

	return nil
}
