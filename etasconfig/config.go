package etasconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/etasim/etasparams"
	"github.com/katalvlaran/etasim/forecast"
)

// Config is the top-level configuration a run is driven by: the
// simulation parameter set plus the run options a forecast batch needs
// (how many catalogs, which PRNG seed, and the cell grid to aggregate
// into).
type Config struct {
	Catalog etasparams.CatalogParams `yaml:"catalog"`
	Run     RunOptions               `yaml:"run"`
	Logging LoggingConfig            `yaml:"logging"`
}

// RunOptions names how many catalogs to simulate and the forecast cell
// grid to reduce them into.
type RunOptions struct {
	NumCatalogs int              `yaml:"num_catalogs"`
	RNGSeed     uint64           `yaml:"rng_seed"`
	GenMagMin   float64          `yaml:"gen_mag_min"`
	GenMagMax   float64          `yaml:"gen_mag_max"`
	Lags        []float64        `yaml:"lags_days"`
	Windows     []AdvisoryWindow `yaml:"windows"`
	Bins        []MagnitudeBin   `yaml:"magnitude_bins"`
}

// AdvisoryWindow mirrors forecast.AdvisoryWindow with YAML tags; config
// files describe windows/bins by name, converted to forecast's types by
// Config.ForecastConfig.
type AdvisoryWindow struct {
	Name         string  `yaml:"name"`
	DurationDays float64 `yaml:"duration_days"`
}

// MagnitudeBin mirrors forecast.MagnitudeBin with YAML tags.
type MagnitudeBin struct {
	Name string  `yaml:"name"`
	MMin float64 `yaml:"m_min"`
	MMax float64 `yaml:"m_max"`
}

// LoggingConfig controls cmd/etasim's and forecast.Runner's logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a reasonable default configuration: a mildly
// sub-critical parameter set and a single-cell 30-day forecast grid.
func DefaultConfig() *Config {
	return &Config{
		Catalog: etasparams.CatalogParams{
			A: -2.1, P: 1.1, C: 0.01, B: 1.0, Alpha: 1.0,
			MRef: 3, MSup: 8, MMinLo: 3, MMinHi: 3, MMaxSim: 8,
			TBegin: 0, TEnd: 30, TEps: 1e-3,
			GenSizeTarget: 100, GenCountMax: 10,
		},
		Run: RunOptions{
			NumCatalogs: 100,
			RNGSeed:     1,
			GenMagMin:   5,
			GenMagMax:   5,
			Lags:        []float64{0},
			Windows:     []AdvisoryWindow{{Name: "30d", DurationDays: 30}},
			Bins:        []MagnitudeBin{{Name: "m3-8", MMin: 3, MMax: 8}},
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses a YAML configuration file at path, starting from
// DefaultConfig so missing fields keep sensible defaults. An empty path
// returns the default configuration unmodified (no file is read).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("etasconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("etasconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ForecastConfig converts Run's window/bin descriptions into a
// forecast.RunConfig ready for forecast.Runner.Run.
func (c *Config) ForecastConfig() forecast.RunConfig {
	windows := make([]forecast.AdvisoryWindow, len(c.Run.Windows))
	for i, w := range c.Run.Windows {
		windows[i] = forecast.AdvisoryWindow{Name: w.Name, DurationDays: w.DurationDays}
	}
	bins := make([]forecast.MagnitudeBin, len(c.Run.Bins))
	for i, b := range c.Run.Bins {
		bins[i] = forecast.MagnitudeBin{Name: b.Name, MMin: b.MMin, MMax: b.MMax}
	}
	return forecast.RunConfig{
		Models:  []forecast.ModelKind{forecast.ModelETAS},
		Lags:    c.Run.Lags,
		Windows: windows,
		Bins:    bins,
	}
}
