package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/fastica/ica"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "center", cfg.Method)
	assert.Equal(t, "parallel", cfg.Algorithm)
	assert.Equal(t, ica.DefaultIterations, cfg.Iterations)
	assert.Equal(t, ica.DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, ',', cfg.Delimiter())
	require.NoError(t, cfg.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "deflation"
	cfg.Components = 2
	cfg.Seed = 42
	cfg.Contrast = ContrastSpec{Name: "exp", Alpha: 0.5}

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: standardize\ninput:\n  delimiter: \";\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "standardize", cfg.Method)
	assert.Equal(t, ica.DefaultIterations, cfg.Iterations)
	assert.Equal(t, "logcosh", cfg.Contrast.Name)
	assert.Equal(t, ';', cfg.Delimiter())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: jade\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("iterations: [1\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"method", func(c *Config) { c.Method = "whiten" }},
		{"contrast", func(c *Config) { c.Contrast.Name = "sigmoid" }},
		{"components", func(c *Config) { c.Components = -1 }},
		{"iterations", func(c *Config) { c.Iterations = 0 }},
		{"tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"tolerance NaN", func(c *Config) { c.Tolerance = math.NaN() }},
		{"tolerance Inf", func(c *Config) { c.Tolerance = math.Inf(1) }},
		{"workers", func(c *Config) { c.Workers = -2 }},
		{"delimiter", func(c *Config) { c.Input.Delimiter = ";;" }},
	}
	for _, tc := range tests {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		assert.ErrorIsf(t, cfg.Validate(), ErrInvalid, "case %s", tc.name)
	}
}

func TestOptionsBuildAnalysis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "standardize"
	cfg.Algorithm = "deflation"
	cfg.Seed = 9

	opts, err := cfg.Options(logr.Discard())
	require.NoError(t, err)

	a, err := ica.NewFromRows([][]float64{{1, 2}, {2, 1}, {4, 3}, {0, 5}}, opts...)
	require.NoError(t, err)
	got := a.Options()
	assert.Equal(t, ica.Standardize, got.Method)
	assert.Equal(t, ica.Deflation, got.Algorithm)
	assert.Equal(t, int64(9), got.Seed)
	assert.Equal(t, ica.LogCosh{Alpha: 1}, got.Contrast)
	assert.Positive(t, got.Workers)
}
