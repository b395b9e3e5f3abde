package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-pattern", "pulsar", "-width", "40", "-height", "30", "-tps", "4", "-seed", "7"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pattern != "pulsar" || cfg.Width != 40 || cfg.Height != 30 || cfg.TPS != 4 || cfg.Seed != 7 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"pattern": "glider", "width": 64}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Pattern != "glider" || cfg.Width != 64 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Height != NewConfig().Height {
		t.Fatalf("absent fields must keep their defaults, got height %d", cfg.Height)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file must return an error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(path); err == nil {
		t.Fatal("malformed file must return an error")
	}
}
