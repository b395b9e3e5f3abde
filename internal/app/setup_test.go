package app

import (
	"os"
	"path/filepath"
	"testing"

	"torlife/pkg/life"
)

func TestBuildBoardFromPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "blinker"
	cfg.Width, cfg.Height = 16, 16

	board, err := BuildBoard(cfg)
	if err != nil {
		t.Fatalf("BuildBoard: %v", err)
	}
	if board.Population() != 3 {
		t.Fatalf("blinker board must start with 3 cells, got %d", board.Population())
	}
	w, h := board.Size()
	if w != 16 || h != 16 {
		t.Fatalf("expected 16x16 board, got %dx%d", w, h)
	}
}

func TestBuildBoardRandomUsesDensity(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Density = 1.0

	board, err := BuildBoard(cfg)
	if err != nil {
		t.Fatalf("BuildBoard: %v", err)
	}
	if board.Population() != 400 {
		t.Fatalf("density 1.0 must fill the grid, got %d cells", board.Population())
	}
}

func TestBuildBoardFromPatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern.json")
	if err := os.WriteFile(path, []byte(`[[0,0],[1,0],[0,1],[1,1]]`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.PatternFile = path
	cfg.Width, cfg.Height = 12, 12

	board, err := BuildBoard(cfg)
	if err != nil {
		t.Fatalf("BuildBoard: %v", err)
	}
	if board.Population() != 4 {
		t.Fatalf("pattern file board must start with 4 cells, got %d", board.Population())
	}
	if !board.Alive().Has(life.Cell{X: 6, Y: 6}) {
		t.Fatalf("offsets must be centered, got %v", board.Alive().Cells())
	}
}

func TestBuildBoardRejectsBadConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "no-such-pattern"
	if _, err := BuildBoard(cfg); err == nil {
		t.Fatal("unknown pattern must return an error")
	}

	cfg = NewConfig()
	cfg.Width = 0
	if _, err := BuildBoard(cfg); err == nil {
		t.Fatal("non-positive width must return an error")
	}

	cfg = NewConfig()
	cfg.Scale = 0
	if _, err := BuildBoard(cfg); err == nil {
		t.Fatal("non-positive scale must return an error")
	}

	cfg = NewConfig()
	cfg.PatternFile = filepath.Join(t.TempDir(), "missing.json")
	if _, err := BuildBoard(cfg); err == nil {
		t.Fatal("missing pattern file must return an error")
	}
}
