package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knowsgen/config"
)

// TestLoad_MissingFile: absent config yields the defaults, not an error.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_Overrides: set keys override, unset keys keep defaults.
func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowsgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clusteringCoefficient: 0.25\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, cfg.ClusteringCoefficient, 1e-12)
	assert.InDelta(t, config.Default().MinCommunityProb, cfg.MinCommunityProb, 1e-12)
	assert.Equal(t, config.Default().MaxIterations, cfg.MaxIterations)
}

// TestLoad_Malformed: broken YAML surfaces a parse error.
func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clusteringCoefficient: notanumber\n"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
