package life

import (
	"crypto/md5"
	"fmt"
	"sort"
)

// Set is an unordered collection of cells keyed by coordinates.
type Set map[Cell]struct{}

// NewSet returns an empty set with capacity for n cells.
func NewSet(n int) Set {
	return make(Set, n)
}

// Add inserts c into the set.
func (s Set) Add(c Cell) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set.
func (s Set) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in the set.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets contain exactly the same cells.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Cells returns the set's cells as a slice in row-major order.
func (s Set) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Fingerprint returns a digest of the set's contents. Sets with equal
// cells always produce equal fingerprints, which makes the digest usable
// as a map key for cycle detection.
func (s Set) Fingerprint() string {
	h := md5.New()
	for _, c := range s.Cells() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
