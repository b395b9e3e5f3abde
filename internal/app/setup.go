package app

import (
	"github.com/pkg/errors"

	"torlife/pkg/life"
)

// BuildBoard constructs a seeded board from the configuration. Unknown
// pattern names and non-positive dimensions are reported as errors so
// drivers can fail fast with a clear message.
func BuildBoard(cfg *Config) (*life.Board, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale < 1 {
		return nil, errors.Errorf("scale must be positive, got %d", cfg.Scale)
	}

	var seeder life.Seeder
	switch {
	case cfg.PatternFile != "":
		offsets, err := life.LoadOffsets(cfg.PatternFile)
		if err != nil {
			return nil, err
		}
		seeder = life.FromOffsets(offsets)
	case cfg.Pattern == "random":
		seeder = life.RandomSoup(cfg.Density)
	default:
		s, ok := life.Seeders()[cfg.Pattern]
		if !ok {
			return nil, errors.Errorf("unknown pattern %q", cfg.Pattern)
		}
		seeder = s
	}

	return life.NewBoard(cfg.Width, cfg.Height, seeder, cfg.Seed), nil
}
