// Package config loads optional user overrides for the name-parsing
// tables (extra surname particles, extra irregular nicknames) from a
// YAML file, merging them into the built-in tables at startup.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dbryar/humanname/internal/nickname"
	"github.com/dbryar/humanname/internal/surname"
)

// Config is the shape of an optional humanname.yaml: locale-specific
// extensions to the tables the parser consults, layered on top of the
// built-in defaults rather than replacing them.
type Config struct {
	SurnamePrefixes []string            `yaml:"surname_prefixes"`
	Nicknames       map[string][]string `yaml:"nicknames"`
}

// Load reads and parses the YAML config file at path. A missing file is
// not an error; it simply yields a zero-value Config.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Apply merges cfg's overrides into the package-level tables consulted
// by parsing. It's idempotent to call more than once.
func (cfg Config) Apply() {
	if len(cfg.SurnamePrefixes) > 0 {
		surname.RegisterPrefixes(cfg.SurnamePrefixes)
	}
	if len(cfg.Nicknames) > 0 {
		nickname.RegisterIrregular(cfg.Nicknames)
	}
}
