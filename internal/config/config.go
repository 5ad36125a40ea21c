// Package config loads the optional JSON settings file of the segment
// command and merges it with command-line flags.
package config

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"github.com/TrevorS/graphseg"
)

// Palette names accepted by the palette setting.
const (
	PaletteRandom = "random"
	PaletteHue    = "hue"
	PaletteMean   = "mean"
)

// Metric names accepted by the metric setting.
const (
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricChebyshev = "chebyshev"
)

// Config holds the settings that are not positional arguments.
type Config struct {
	Workers  int    `json:"workers"`
	Seed     int64  `json:"seed"`
	Palette  string `json:"palette"`
	Metric   string `json:"metric"`
	MaxDim   int    `json:"max_dim"`
	Labels   string `json:"labels"`
	LogLevel string `json:"log_level"`
	JSONLog  bool   `json:"json_log"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean the flag was not given.
type Flags struct {
	Workers  int
	Seed     int64
	Palette  string
	Metric   string
	MaxDim   int
	Labels   string
	LogLevel string
	JSONLog  bool
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

// Resolve applies flags over the file values and fills anything still
// empty with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Palette != "" {
		c.Palette = flags.Palette
	}
	if flags.Metric != "" {
		c.Metric = flags.Metric
	}
	if flags.MaxDim > 0 {
		c.MaxDim = flags.MaxDim
	}
	if flags.Labels != "" {
		c.Labels = flags.Labels
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.JSONLog {
		c.JSONLog = true
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Palette == "" {
		c.Palette = PaletteRandom
	}
	if c.Metric == "" {
		c.Metric = MetricEuclidean
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	switch c.Palette {
	case PaletteRandom, PaletteHue, PaletteMean:
	default:
		return errors.Errorf("config: unknown palette %q", c.Palette)
	}
	if _, err := c.ColorMetric(); err != nil {
		return err
	}
	if c.MaxDim < 0 {
		return errors.Errorf("config: max_dim must be >= 0, got %d", c.MaxDim)
	}
	return nil
}

// ColorMetric returns the segmentation metric named by c.Metric.
func (c *Config) ColorMetric() (graphseg.ColorMetric, error) {
	switch c.Metric {
	case MetricEuclidean, "":
		return graphseg.EuclideanMetric{}, nil
	case MetricManhattan:
		return graphseg.ManhattanMetric{}, nil
	case MetricChebyshev:
		return graphseg.ChebyshevMetric{}, nil
	}
	return nil, errors.Errorf("config: unknown metric %q", c.Metric)
}
