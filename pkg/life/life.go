// Package life implements a sparse Game of Life on a toroidal grid.
//
// Instead of scanning the whole grid every generation, the engine tracks
// the set of alive cells and the set of boundary cells (dead cells
// adjacent to at least one alive cell). A generation touches only those
// two sets, so the cost of a step is proportional to the population, not
// the grid area.
package life

// Neighbors returns the Moore neighborhood of c on a w*h torus: the up to
// 8 distinct cells surrounding it, each wrapped into [0,w)x[0,h). On
// degenerate grids (w or h below 3) wrapping can fold neighbors onto each
// other or onto c itself; duplicates collapse and c is never included, so
// the result may hold fewer than 8 cells.
func Neighbors(c Cell, w, h int) Set {
	cc := WrapCell(c, w, h)
	out := make(Set, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := WrapCell(Cell{X: cc.X + dx, Y: cc.Y + dy}, w, h)
			if n == cc {
				continue
			}
			out.Add(n)
		}
	}
	return out
}

// LiveNeighbors counts the distinct neighbors of c that are present in
// alive. The count ranges over the same deduplicated neighborhood that
// Neighbors returns, so it stays in [0, 8] on any grid.
func LiveNeighbors(c Cell, alive Set, w, h int) int {
	cc := WrapCell(c, w, h)
	var seen [8]Cell
	distinct := 0
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := WrapCell(Cell{X: cc.X + dx, Y: cc.Y + dy}, w, h)
			if n == cc {
				continue
			}
			dup := false
			for i := 0; i < distinct; i++ {
				if seen[i] == n {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			seen[distinct] = n
			distinct++
			if alive.Has(n) {
				count++
			}
		}
	}
	return count
}

// ComputeBoundary returns the set of dead cells adjacent to at least one
// alive cell: the union of every alive cell's neighborhood minus the
// alive set itself. The result is always disjoint from alive, and the
// cost is proportional to the population rather than the grid area.
func ComputeBoundary(alive Set, w, h int) Set {
	boundary := make(Set, len(alive)*4)
	for c := range alive {
		for n := range Neighbors(c, w, h) {
			if alive.Has(n) {
				continue
			}
			boundary.Add(n)
		}
	}
	return boundary
}

// Evolve computes the next generation from the alive set and its
// boundary. Alive cells survive with 2 or 3 live neighbors; boundary
// cells are born with exactly 3. Every other cell stays dead, which is
// correct because a dead cell outside the boundary has no alive neighbor
// at all and can never satisfy the birth rule.
//
// The caller must pass a boundary that matches alive (usually the output
// of ComputeBoundary for that exact set). Evolve does not re-derive it;
// a stale boundary yields a wrong next generation, not a crash. Inputs
// are never mutated and the result is a brand-new set.
func Evolve(alive, boundary Set, w, h int) Set {
	next := make(Set, len(alive))
	for c := range alive {
		if n := LiveNeighbors(c, alive, w, h); n == 2 || n == 3 {
			next.Add(c)
		}
	}
	for c := range boundary {
		if LiveNeighbors(c, alive, w, h) == 3 {
			next.Add(c)
		}
	}
	return next
}
