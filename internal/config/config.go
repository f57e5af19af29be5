// Package config loads semdiff configuration. The main configuration lives
// at .semdiff/config.json and supplies defaults the compare flags override;
// per-comparison rules files (rules.go) layer on top of it.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"semdiff/internal/errors"
)

// ConfigDir is the directory semdiff keeps its state in, relative to the
// working directory.
const ConfigDir = ".semdiff"

// Config represents the complete semdiff configuration
type Config struct {
	Version   int           `json:"version" mapstructure:"version"`
	Tolerance float64       `json:"tolerance" mapstructure:"tolerance"`
	Ignore    []string      `json:"ignore" mapstructure:"ignore"`
	Output    OutputConfig  `json:"output" mapstructure:"output"`
	History   HistoryConfig `json:"history" mapstructure:"history"`
	Logging   LoggingConfig `json:"logging" mapstructure:"logging"`
}

// OutputConfig contains report output configuration
type OutputConfig struct {
	Format string `json:"format" mapstructure:"format"`
}

// HistoryConfig contains run-history configuration
type HistoryConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Dir     string `json:"dir" mapstructure:"dir"`
	MaxRuns int    `json:"maxRuns" mapstructure:"maxRuns"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		Tolerance: 0,
		Ignore:    []string{},
		Output: OutputConfig{
			Format: "human",
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     ConfigDir,
			MaxRuns: 1000,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <root>/.semdiff/config.json, falling
// back to defaults when no config file exists.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("tolerance", 0.0)
	v.SetDefault("output.format", "human")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.dir", ConfigDir)
	v.SetDefault("history.maxRuns", 1000)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ConfigDir))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, errors.New(errors.ConfigError, "cannot read config file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New(errors.ConfigError, "cannot unmarshal config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to <root>/.semdiff/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New(errors.ConfigError, "cannot create config directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.ConfigError, "cannot marshal config", err)
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return errors.New(errors.ConfigError, "unsupported config version", nil)
	}
	if c.Tolerance < 0 {
		return errors.New(errors.ConfigError, "tolerance must be non-negative", nil)
	}
	switch c.Output.Format {
	case "json", "human":
	default:
		return errors.New(errors.ConfigError, "output.format must be json or human", nil)
	}
	return nil
}
