// Package config loads driver configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/distsem/pkg/distsem"
	"github.com/cognicore/distsem/pkg/distsem/internalerr"
)

// Config holds the tunables of a similarity run. The pipeline itself has a
// single constant (the epsilon shared by PPMI and cosine); everything here
// belongs to the driving program.
type Config struct {
	WindowSize int    `yaml:"window_size"`
	TopK       int    `yaml:"top_k"`
	Weighting  string `yaml:"weighting"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		WindowSize: 2,
		TopK:       5,
		Weighting:  string(distsem.WeightingPPMI),
	}
}

// Load reads a YAML config file and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.WindowSize < 0 {
		return fmt.Errorf("window_size %d must be >= 0: %w", c.WindowSize, internalerr.ErrInvalidConfig)
	}
	if c.TopK < 0 {
		return fmt.Errorf("top_k %d must be >= 0: %w", c.TopK, internalerr.ErrInvalidConfig)
	}
	switch distsem.Weighting(c.Weighting) {
	case distsem.WeightingCounts, distsem.WeightingPPMI:
	default:
		return fmt.Errorf("weighting %q must be %q or %q: %w",
			c.Weighting, distsem.WeightingCounts, distsem.WeightingPPMI, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Options converts the config into pipeline options.
func (c Config) Options() distsem.Options {
	return distsem.Options{
		WindowSize: c.WindowSize,
		Weighting:  distsem.Weighting(c.Weighting),
	}
}
