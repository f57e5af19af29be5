package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"semdiff/internal/errors"
)

// Rules is a per-comparison rules file in TOML form. It sits between the
// global config and the command flags: flags beat rules, rules beat config.
//
//	tolerance = 0.001
//	ignore = ["/meta/generated_at", "/meta/host"]
type Rules struct {
	// Tolerance overrides the numeric tolerance when set
	Tolerance *float64 `toml:"tolerance"`

	// Ignore lists suppressed addresses, merged with the config's list
	Ignore []string `toml:"ignore"`
}

// LoadRules parses a rules file from the given path
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.IOError, fmt.Sprintf("cannot read rules file %s", path), err)
	}

	var rules Rules
	if err := toml.Unmarshal(data, &rules); err != nil {
		return nil, errors.New(errors.ConfigError, fmt.Sprintf("cannot parse rules file %s", path), err)
	}

	if rules.Tolerance != nil && *rules.Tolerance < 0 {
		return nil, errors.New(errors.ConfigError, "rules tolerance must be non-negative", nil)
	}

	return &rules, nil
}
