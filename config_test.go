package easel

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Width != 320 || opts.Height != 240 {
		t.Errorf("default canvas = %dx%d, want 320x240", opts.Width, opts.Height)
	}
	if opts.Pen != DefaultPen {
		t.Errorf("default pen = %d, want %d", opts.Pen, DefaultPen)
	}
	if opts.StrokeDelayMS != 0 {
		t.Errorf("default stroke delay = %d, want 0", opts.StrokeDelayMS)
	}
}

func TestOptionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easel.toml")
	want := Options{
		Title:         "Plotter",
		Width:         160,
		Height:        120,
		Scale:         4,
		Pen:           3,
		ShowFPS:       true,
		StrokeDelayMS: 3,
		Debug:         true,
	}

	if err := SaveOptions(path, want); err != nil {
		t.Fatalf("SaveOptions: %v", err)
	}
	got, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadOptionsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easel.toml")
	if err := os.WriteFile(path, []byte("Title = \"Sketchpad\"\nPen = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if got.Title != "Sketchpad" || got.Pen != 2 {
		t.Errorf("file values not applied: %+v", got)
	}
	if got.Width != 320 || got.Height != 240 || got.Scale != 2 {
		t.Errorf("omitted keys lost their defaults: %+v", got)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("LoadOptions succeeded on a missing file")
	}
}

func TestOptionsRunConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.StrokeDelayMS = 3
	opts.ShowFPS = true

	cfg := opts.RunConfig()
	if cfg.StrokeDelay != 3*time.Millisecond {
		t.Errorf("StrokeDelay = %v, want 3ms", cfg.StrokeDelay)
	}
	if !cfg.ShowFPS {
		t.Error("ShowFPS not carried over")
	}
	if cfg.Width != opts.Width || cfg.Height != opts.Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", cfg.Width, cfg.Height, opts.Width, opts.Height)
	}
}
