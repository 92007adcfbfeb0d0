package easel

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Options is the file-loadable counterpart of RunConfig, for deployments
// that tune the paint window without recompiling. Keys omitted from the
// file keep their defaults.
type Options struct {
	Title         string
	Width         int
	Height        int
	Scale         int
	Pen           int
	ShowFPS       bool
	StrokeDelayMS int
	Debug         bool
}

// DefaultOptions returns the options a missing file would imply.
func DefaultOptions() Options {
	return Options{
		Title:  "Easel",
		Width:  320,
		Height: 240,
		Scale:  2,
		Pen:    DefaultPen,
	}
}

// LoadOptions reads a TOML options file over the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	return opts, nil
}

// SaveOptions writes the options as TOML, creating or truncating path.
func SaveOptions(path string, opts Options) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(opts); err != nil {
		return fmt.Errorf("encode options file: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write options file: %w", err)
	}
	return nil
}

// RunConfig converts the options into a RunConfig for Run or NewGame.
func (o Options) RunConfig() RunConfig {
	return RunConfig{
		Title:       o.Title,
		Width:       o.Width,
		Height:      o.Height,
		Scale:       o.Scale,
		Pen:         o.Pen,
		ShowFPS:     o.ShowFPS,
		StrokeDelay: time.Duration(o.StrokeDelayMS) * time.Millisecond,
		Debug:       o.Debug,
	}
}
