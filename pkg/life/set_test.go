package life

import "testing"

func TestSetCloneIsIndependent(t *testing.T) {
	s := setOf(Cell{1, 2}, Cell{3, 4})
	clone := s.Clone()
	clone.Add(Cell{5, 6})

	if s.Len() != 2 {
		t.Fatalf("clone mutation leaked into the original, len=%d", s.Len())
	}
	if !clone.Has(Cell{1, 2}) || !clone.Has(Cell{3, 4}) {
		t.Fatal("clone lost cells from the original")
	}
}

func TestSetEqual(t *testing.T) {
	a := setOf(Cell{0, 0}, Cell{1, 1})
	b := setOf(Cell{1, 1}, Cell{0, 0})
	c := setOf(Cell{0, 0}, Cell{2, 2})

	if !a.Equal(b) {
		t.Fatal("sets with the same cells must be equal")
	}
	if a.Equal(c) {
		t.Fatal("sets with different cells must not be equal")
	}
	if a.Equal(setOf(Cell{0, 0})) {
		t.Fatal("sets of different sizes must not be equal")
	}
}

func TestSetCellsRowMajorOrder(t *testing.T) {
	s := setOf(Cell{2, 1}, Cell{0, 0}, Cell{1, 0}, Cell{0, 1})
	got := s.Cells()
	want := []Cell{{0, 0}, {1, 0}, {0, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestFingerprintTracksContents(t *testing.T) {
	a := setOf(Cell{1, 1}, Cell{2, 2})
	b := setOf(Cell{2, 2}, Cell{1, 1})
	c := setOf(Cell{1, 1}, Cell{2, 3})

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("equal sets must have equal fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("different sets should have different fingerprints")
	}
}
