package life

// Board couples an alive set with its derived boundary on a torus of
// fixed dimensions. It keeps the two sets in sync so drivers cannot feed
// Evolve a stale boundary: Step and Toggle recompute the boundary after
// every change to the alive set.
//
// Each step installs a brand-new alive set; the previous one is never
// mutated, so a snapshot taken with Alive stays valid across steps.
type Board struct {
	w, h       int
	alive      Set
	boundary   Set
	generation int
	seeder     Seeder
	seed       int64
	buf        []uint8
}

// NewBoard creates a seeded board. Dimensions below 1 are clamped to 1.
// A nil seeder yields an empty board.
func NewBoard(w, h int, seeder Seeder, seed int64) *Board {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b := &Board{w: w, h: h, seeder: seeder, buf: make([]uint8, w*h)}
	b.Reset(seed)
	return b
}

// Size returns the grid dimensions.
func (b *Board) Size() (int, int) { return b.w, b.h }

// Generation returns the number of steps taken since the last reset.
func (b *Board) Generation() int { return b.generation }

// Population returns the number of alive cells.
func (b *Board) Population() int { return len(b.alive) }

// Alive returns the current alive set. The set is a snapshot: stepping
// the board replaces it rather than mutating it.
func (b *Board) Alive() Set { return b.alive }

// Boundary returns the current boundary set, kept disjoint from the
// alive set by construction.
func (b *Board) Boundary() Set { return b.boundary }

// Reset reseeds the board from its seeder. Equal seeds always reproduce
// the same initial state.
func (b *Board) Reset(seed int64) {
	b.seed = seed
	if b.seeder != nil {
		b.alive = b.seeder(NewRNG(seed), b.w, b.h)
	} else {
		b.alive = NewSet(0)
	}
	b.boundary = ComputeBoundary(b.alive, b.w, b.h)
	b.generation = 0
}

// Seed returns the seed used by the last reset.
func (b *Board) Seed() int64 { return b.seed }

// Step advances the board by one generation and rebuilds the boundary
// for the new alive set.
func (b *Board) Step() {
	b.alive = Evolve(b.alive, b.boundary, b.w, b.h)
	b.boundary = ComputeBoundary(b.alive, b.w, b.h)
	b.generation++
}

// Toggle flips the cell at (x, y), wrapping out-of-range coordinates
// onto the torus. The alive set is replaced, not mutated, and the
// boundary is recomputed to match.
func (b *Board) Toggle(x, y int) {
	c := WrapCell(Cell{X: x, Y: y}, b.w, b.h)
	next := b.alive.Clone()
	if next.Has(c) {
		delete(next, c)
	} else {
		next.Add(c)
	}
	b.alive = next
	b.boundary = ComputeBoundary(b.alive, b.w, b.h)
}

// Cells materializes the alive set into a row-major 0/1 display buffer.
// The buffer is reused between calls; copy it if it must outlive the
// next call.
func (b *Board) Cells() []uint8 {
	for i := range b.buf {
		b.buf[i] = 0
	}
	for c := range b.alive {
		b.buf[c.Y*b.w+c.X] = 1
	}
	return b.buf
}

// Fingerprint returns a digest of the current alive set, usable as a map
// key for cycle detection.
func (b *Board) Fingerprint() string {
	return b.alive.Fingerprint()
}
