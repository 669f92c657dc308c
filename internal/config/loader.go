// Package config loads the optional rgsweep.yaml file and validates it
// against the embedded JSON Schema.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kjourdan1/rgsweep/internal/deleter"
)

// Config is the optional rgsweep.yaml file. Flags and RGSWEEP_* environment
// variables take precedence over it.
type Config struct {
	Exclude []string `yaml:"exclude" json:"exclude,omitempty"`
	Workers int      `yaml:"workers" json:"workers,omitempty"`
	Quiet   bool     `yaml:"quiet" json:"quiet,omitempty"`
	DryRun  bool     `yaml:"dry_run" json:"dry_run,omitempty"`
}

// Load reads an rgsweep.yaml file, validates it against the schema when one
// is registered, and applies default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses raw YAML bytes into a Config and applies defaults. When a
// schema is registered, the document is validated first and a schema
// violation fails the parse.
func Parse(data []byte) (*Config, error) {
	if len(GetSchema()) > 0 {
		result, err := ValidateYAML(data)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, fmt.Errorf("config file is invalid: %s", result.Describe())
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults fills unset optional fields. The worker-pool width default
// is owned by the deleter so the flag default and the pool fallback agree.
func ApplyDefaults(cfg *Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = deleter.DefaultWorkers
	}
}
