package easel

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures Run and NewGame. The zero value is usable: a
// 320x240 canvas with the default palette, white pen, and the platform
// pointer source.
type RunConfig struct {
	Title  string
	Width  int // canvas width in pixels; 320 when zero
	Height int // canvas height in pixels; 240 when zero
	Scale  int // window pixels per canvas pixel; 2 when zero

	// Palette replaces DefaultPalette when non-nil.
	Palette []Color

	// Pen is the initial pen color index. Zero selects DefaultPen; to
	// start with palette index 0, call Canvas().SetPen(0) after NewGame.
	Pen int

	// Source overrides pointer detection. When nil, DetectSource picks
	// one from Capabilities.
	Source Source

	// Capabilities for pointer detection when Source is nil. The zero
	// value means DesktopCapabilities.
	Capabilities Capabilities

	ShowFPS     bool
	StrokeDelay time.Duration
	Debug       bool
}

// penKeys maps the digit row to palette indices 0-7.
var penKeys = [...]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
	ebiten.KeyDigit7,
	ebiten.KeyDigit8,
}

// Game is the ebiten.Game shell around a Sketch: Update runs one control
// loop tick plus pen-color key handling, Draw composites the canvas and
// any cursor sprite. Use it directly when you need to layer your own
// chrome on top; otherwise just call Run.
type Game struct {
	sketch *Sketch
	canvas *Canvas
	cursor *CursorSource // non-nil when the source owns a sprite

	frame   *ebiten.Image
	showFPS bool
}

// NewGame builds the canvas, selects the pointer source, and wires the
// control loop. It fails with ErrNoPointer when no pointer capability is
// available, before any loop runs.
func NewGame(cfg RunConfig) (*Game, error) {
	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = 320
	}
	if height == 0 {
		height = 240
	}

	canvas := NewCanvas(width, height, cfg.Palette)
	if cfg.Pen != 0 {
		canvas.SetPen(cfg.Pen)
	}

	source := cfg.Source
	if source == nil {
		caps := cfg.Capabilities
		if caps == (Capabilities{}) {
			caps = DesktopCapabilities
		}
		var err error
		source, err = DetectSource(width, height, caps)
		if err != nil {
			return nil, err
		}
	}

	sketch := NewSketch(canvas, source)
	sketch.SetDebug(cfg.Debug)
	sketch.SetStrokeDelay(cfg.StrokeDelay)

	g := &Game{
		sketch:  sketch,
		canvas:  canvas,
		showFPS: cfg.ShowFPS,
	}
	if c, ok := source.(*CursorSource); ok {
		g.cursor = c
	}
	return g, nil
}

// Canvas returns the paint surface.
func (g *Game) Canvas() *Canvas { return g.canvas }

// Sketch returns the control loop.
func (g *Game) Sketch() *Sketch { return g.sketch }

// Update handles pen selection keys and runs one sketch tick.
func (g *Game) Update() error {
	for i, key := range penKeys {
		if i >= g.canvas.PaletteLen() {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			g.canvas.SetPen(i)
		}
	}
	g.sketch.Step()
	return nil
}

// Draw composites the canvas, the cursor sprite when one exists, and the
// FPS overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.canvas.Width(), g.canvas.Height())
		g.frame.WritePixels(g.canvas.RGBA())
	} else if g.canvas.Dirty() {
		g.frame.WritePixels(g.canvas.RGBA())
	}
	screen.DrawImage(g.frame, nil)

	if g.cursor != nil {
		g.cursor.Draw(screen)
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout reports the canvas dimensions; the window scales them.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}

// Run creates a window and drives the paint loop until the window closes.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}

	title := cfg.Title
	if title == "" {
		title = "Easel"
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 2
	}
	ebiten.SetWindowSize(g.canvas.Width()*scale, g.canvas.Height()*scale)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
