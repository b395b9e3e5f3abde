package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config holds the driver parameters. Grid dimensions are fixed at
// startup; the simulation never resizes.
type Config struct {
	Pattern     string  `json:"pattern"`
	PatternFile string  `json:"pattern_file"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Density     float64 `json:"density"`
	Seed        int64   `json:"seed"`
	Scale       int     `json:"scale"`
	TPS         int     `json:"tps"`
	MaxGen      int     `json:"max_generations"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: "random",
		Width:   120,
		Height:  80,
		Density: 0.15,
		Seed:    42,
		Scale:   6,
		TPS:     10,
		MaxGen:  0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern name")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "JSON file of [x,y] center offsets (overrides -pattern)")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for the random pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for pattern generation and resets")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.MaxGen, "max-gen", c.MaxGen, "stop after this many generations (0 = run forever)")
}

// LoadFile merges values from a JSON config file over the current
// configuration. Fields absent from the file keep their values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %q", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %q", path)
	}
	return nil
}
