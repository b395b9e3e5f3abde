package life

import "testing"

func TestBoardKeepsSetsInSync(t *testing.T) {
	b := NewBoard(24, 24, RandomSoup(0.25), 11)
	for step := 0; step < 10; step++ {
		for c := range b.Boundary() {
			if b.Alive().Has(c) {
				t.Fatalf("step %d: boundary cell %v is alive", step, c)
			}
		}
		want := ComputeBoundary(b.Alive(), 24, 24)
		if !b.Boundary().Equal(want) {
			t.Fatalf("step %d: boundary out of sync with alive set", step)
		}
		for c := range b.Alive() {
			if c.X < 0 || c.X >= 24 || c.Y < 0 || c.Y >= 24 {
				t.Fatalf("step %d: alive cell %v out of range", step, c)
			}
		}
		b.Step()
	}
	if b.Generation() != 10 {
		t.Fatalf("expected generation 10, got %d", b.Generation())
	}
}

func TestBoardResetDeterministic(t *testing.T) {
	b := NewBoard(32, 24, RandomSoup(0.2), 99)
	initial := b.Alive().Clone()
	fp := b.Fingerprint()

	b.Step()
	b.Step()
	b.Reset(99)

	if !b.Alive().Equal(initial) {
		t.Fatal("Reset with the same seed must reproduce the initial state")
	}
	if b.Fingerprint() != fp {
		t.Fatal("Reset with the same seed must reproduce the fingerprint")
	}
	if b.Generation() != 0 {
		t.Fatalf("Reset must zero the generation, got %d", b.Generation())
	}

	b.Reset(100)
	if b.Alive().Equal(initial) {
		t.Fatal("a different seed should produce a different soup")
	}
}

func TestBoardStepPreservesSnapshots(t *testing.T) {
	b := NewBoard(16, 16, Seeders()["blinker"], 0)
	snapshot := b.Alive()
	before := snapshot.Clone()

	b.Step()

	if !snapshot.Equal(before) {
		t.Fatal("stepping must replace the alive set, not mutate the old one")
	}
}

func TestBoardToggle(t *testing.T) {
	b := NewBoard(10, 8, nil, 0)
	if b.Population() != 0 {
		t.Fatalf("nil seeder must give an empty board, got %d cells", b.Population())
	}

	b.Toggle(3, 4)
	if !b.Alive().Has(Cell{3, 4}) {
		t.Fatal("toggle must revive a dead cell")
	}
	if b.Boundary().Len() != 8 {
		t.Fatalf("lone cell must have 8 boundary cells, got %d", b.Boundary().Len())
	}

	b.Toggle(3, 4)
	if b.Population() != 0 || b.Boundary().Len() != 0 {
		t.Fatal("toggling twice must restore the empty board")
	}

	b.Toggle(-1, -1)
	if !b.Alive().Has(Cell{9, 7}) {
		t.Fatal("toggle must wrap negative coordinates onto the torus")
	}
}

func TestBoardCellsBuffer(t *testing.T) {
	b := NewBoard(10, 10, Seeders()["block"], 0)
	cells := b.Cells()
	if len(cells) != 100 {
		t.Fatalf("expected 100 cells, got %d", len(cells))
	}
	alive := 0
	for i, v := range cells {
		if v == 1 {
			alive++
			x, y := i%10, i/10
			if !b.Alive().Has(Cell{x, y}) {
				t.Fatalf("buffer marks (%d,%d) alive but the set does not", x, y)
			}
		}
	}
	if alive != 4 {
		t.Fatalf("block must mark 4 cells, got %d", alive)
	}
}

func TestBoardClampsDimensions(t *testing.T) {
	b := NewBoard(0, -3, nil, 0)
	w, h := b.Size()
	if w != 1 || h != 1 {
		t.Fatalf("expected 1x1 board, got %dx%d", w, h)
	}
	b.Step()
	if b.Population() != 0 {
		t.Fatal("empty 1x1 board must stay empty")
	}
}
