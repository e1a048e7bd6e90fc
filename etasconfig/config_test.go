package etasconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := `
catalog:
  a: -3
run:
  num_catalogs: 50
  rng_seed: 99
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -3.0, cfg.Catalog.A)
	assert.Equal(t, 50, cfg.Run.NumCatalogs)
	assert.Equal(t, uint64(99), cfg.Run.RNGSeed)
	// Untouched default field preserved.
	assert.Equal(t, 1.1, cfg.Catalog.P)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
}

func TestForecastConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	fc := cfg.ForecastConfig()
	require.Len(t, fc.Windows, 1)
	require.Len(t, fc.Bins, 1)
	assert.Equal(t, "30d", fc.Windows[0].Name)
	assert.Equal(t, "m3-8", fc.Bins[0].Name)
}
