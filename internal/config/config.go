// Package config loads the barstatus program config. This is separate from
// the personal settings overlay: it controls logging, where the overlay
// lives, and how the registration plan is handed off.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/barstatus/internal/logging"
	"github.com/wizzomafizzo/barstatus/internal/status"
)

// EnvPrefix prefixes environment overrides, e.g. BARSTATUS_LOGGING_LEVEL.
const EnvPrefix = "BARSTATUS"

type Config struct {
	Settings   string        `yaml:"settings,omitempty" mapstructure:"settings"`
	Output     string        `yaml:"output" mapstructure:"output"`
	Logging    LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Standalone bool          `yaml:"standalone" mapstructure:"standalone"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Path       string `yaml:"path,omitempty" mapstructure:"path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// Load reads the config file at path through fs. A missing file yields
// the defaults. Environment variables override file values.
func Load(fs afero.Fs, path string) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetFs(fs)
	viperInstance.SetConfigFile(path)

	if err := viperInstance.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(viperInstance)
}

func newViper() *viper.Viper {
	viperInstance := viper.New()

	defaults := DefaultConfig()
	viperInstance.SetDefault("settings", defaults.Settings)
	viperInstance.SetDefault("output", defaults.Output)
	viperInstance.SetDefault("standalone", defaults.Standalone)
	viperInstance.SetDefault("logging.level", defaults.Logging.Level)
	viperInstance.SetDefault("logging.path", defaults.Logging.Path)
	viperInstance.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	viperInstance.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viperInstance.SetDefault("logging.max_age", defaults.Logging.MaxAge)

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

func unmarshal(viperInstance *viper.Viper) (*Config, error) {
	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate checks output format and log level
func (c *Config) Validate() error {
	if !slices.Contains(status.Formats, c.Output) {
		return fmt.Errorf("invalid output '%s': must be one of: %s",
			c.Output, strings.Join(status.Formats, ", "))
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return errors.New("logging limits cannot be negative")
	}

	return nil
}

// LoggingConfig converts the logging section for logging.New.
func (c *Config) LoggingConfig() (logging.Config, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{
		Path:       c.Logging.Path,
		Level:      level,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
	}, nil
}
