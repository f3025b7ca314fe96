// Package config loads generator configuration from YAML.
//
// A missing file is not an error: Load falls back to Default, so a
// bare deployment runs with production defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the operator-facing configuration of the knows generator.
type Config struct {
	// ClusteringCoefficient is the target global clustering coefficient
	// of the generated graph. Default: 0.1.
	ClusteringCoefficient float64 `yaml:"clusteringCoefficient"`

	// MinCommunityProb is the floor on any community's intra-core edge
	// probability. Default: 0.1.
	MinCommunityProb float64 `yaml:"minCommunityProb"`

	// MaxIterations caps the driver's convergence loop. Default: 32.
	MaxIterations int `yaml:"maxIterations"`
}

// Default returns the production defaults.
func Default() Config {
	return Config{
		ClusteringCoefficient: 0.1,
		MinCommunityProb:      0.1,
		MaxIterations:         32,
	}
}

// Load reads a YAML config from path. A missing file yields Default;
// unset keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}
