package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 50\nfunction: ridge\nseed: 7\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Samples)
	assert.Equal(t, "ridge", cfg.Function)
	assert.Equal(t, uint64(7), cfg.Seed)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().Dim, cfg.Dim)
}

func TestBuildFunctional(t *testing.T) {
	cfg := DefaultConfig()
	for _, name := range []string{"sphere", "ridge", "rosenbrock"} {
		cfg.Function = name
		fn, err := cfg.BuildFunctional()
		require.NoError(t, err, name)
		assert.Equal(t, cfg.Dim, fn.Dim(), name)
	}

	cfg.Function = "nope"
	_, err := cfg.BuildFunctional()
	assert.Error(t, err)
}
