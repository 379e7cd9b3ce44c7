package config

import (
	"fmt"

	"github.com/wizzomafizzo/barstatus/internal/status"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default barstatus configuration
func DefaultConfig() *Config {
	return &Config{
		Output:     status.FormatText,
		Standalone: true,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	config := DefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
