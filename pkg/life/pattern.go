package life

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// DefaultSoupDensity is the alive probability used by the registered
// "random" seeder.
const DefaultSoupDensity = 0.15

// Seeder produces an initial alive set for a w*h grid.
type Seeder func(rng *RNG, w, h int) Set

var seeders = map[string]Seeder{}

// Register adds a seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of named seeders.
func Seeders() map[string]Seeder {
	return seeders
}

// FromOffsets builds a Seeder that stamps center-relative offsets onto
// the grid, wrapping each cell onto the torus. Offsets are the
// conventional pattern encoding: (0,0) is the grid center.
func FromOffsets(offsets []Cell) Seeder {
	return func(_ *RNG, w, h int) Set {
		out := make(Set, len(offsets))
		for _, off := range offsets {
			out.Add(WrapCell(Cell{X: w/2 + off.X, Y: h/2 + off.Y}, w, h))
		}
		return out
	}
}

// RandomSoup returns a Seeder that fills each cell independently with the
// given alive probability.
func RandomSoup(density float64) Seeder {
	return func(rng *RNG, w, h int) Set {
		out := make(Set, int(float64(w*h)*density))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Chance(density) {
					out.Add(Cell{X: x, Y: y})
				}
			}
		}
		return out
	}
}

// LoadOffsets reads center-relative pattern offsets from a JSON file
// containing a list of [x, y] pairs.
func LoadOffsets(path string) ([]Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read pattern file %q", path)
	}
	var pairs [][2]int
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, errors.Wrapf(err, "parse pattern file %q", path)
	}
	out := make([]Cell, len(pairs))
	for i, p := range pairs {
		out[i] = Cell{X: p[0], Y: p[1]}
	}
	return out, nil
}

// blockOffsets is the 2x2 still life.
func blockOffsets() []Cell {
	return []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
}

// blinkerOffsets is the period-2 horizontal triplet.
func blinkerOffsets() []Cell {
	return []Cell{{-1, 0}, {0, 0}, {1, 0}}
}

// gliderOffsets is the smallest spaceship, heading down-right.
func gliderOffsets() []Cell {
	return []Cell{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
}

// pulsarOffsets is the period-3 oscillator: four arms of three cells
// mirrored across both axes, spanning a 13x13 box.
func pulsarOffsets() []Cell {
	var out []Cell
	for _, sx := range []int{-1, 1} {
		for _, sy := range []int{-1, 1} {
			for k := 2; k <= 4; k++ {
				out = append(out,
					Cell{X: sx * k, Y: sy * 1},
					Cell{X: sx * k, Y: sy * 6},
					Cell{X: sx * 1, Y: sy * k},
					Cell{X: sx * 6, Y: sy * k},
				)
			}
		}
	}
	return out
}

// gosperGunOffsets is Gosper's glider gun, recentered so the 36-cell
// pattern straddles the grid center.
func gosperGunOffsets() []Cell {
	cells := []Cell{
		{0, 4}, {0, 5}, {1, 4}, {1, 5},
		{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8},
		{13, 2}, {13, 8}, {14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5},
		{16, 6}, {17, 5},
		{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1},
		{22, 5}, {24, 0}, {24, 1}, {24, 5}, {24, 6},
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	}
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{X: c.X - 18, Y: c.Y - 4}
	}
	return out
}

func init() {
	Register("random", RandomSoup(DefaultSoupDensity))
	Register("block", FromOffsets(blockOffsets()))
	Register("blinker", FromOffsets(blinkerOffsets()))
	Register("glider", FromOffsets(gliderOffsets()))
	Register("pulsar", FromOffsets(pulsarOffsets()))
	Register("gosper-gun", FromOffsets(gosperGunOffsets()))
}
