package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/olivier-w/radial/internal/config"
	"github.com/olivier-w/radial/internal/radial"
)

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")

	cfg := radial.DefaultConfig()
	cfg.Progress = 55
	if err := saveState(path, radial.New(cfg).SaveState(nil)); err != nil {
		t.Fatalf("save: %v", err)
	}

	state, err := loadState(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	view := radial.New(radial.DefaultConfig())
	var got []float64
	view.OnProgressChanged(func(p, f float64) { got = append(got, p, f) })
	got = nil

	view.RestoreState(state)
	if len(got) != 2 || got[0] != 55 || got[1] != 0.55 {
		t.Fatalf("listener saw %v, want [55 0.55]", got)
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	state, err := loadState(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil || state != nil {
		t.Fatalf("missing file should yield nil state, got %v, %v", state, err)
	}
}

func TestLoadStateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	if err := os.WriteFile(path, []byte("version: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadState(path); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestResolveStatePath(t *testing.T) {
	if got := resolveStatePath(" flag.yaml ", "cfg.yaml"); got != "flag.yaml" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := resolveStatePath("", "cfg.yaml"); got != "cfg.yaml" {
		t.Fatalf("config should be used, got %q", got)
	}
	t.Setenv("XDG_STATE_HOME", "/xdg")
	if got := resolveStatePath("", ""); got != filepath.Join("/xdg", "radial", "state.yaml") {
		t.Fatalf("default path = %q", got)
	}
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.png")
	log, closeLog, err := newLogger("")
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()

	cfg := radial.DefaultConfig()
	cfg.Progress = 30
	opts := config.Default()
	opts.View = cfg
	if err := renderPNG(opts, path, 64, log); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected png at %s: %v", path, err)
	}
	if err := renderPNG(opts, path, 0, log); err == nil {
		t.Fatal("expected error for zero size")
	}
}
