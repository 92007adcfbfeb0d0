package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cursorSize      = 20   // sprite dimensions in pixels
	cursorBaseSpeed = 2.0  // pixels per tick when movement starts
	cursorMaxSpeed  = 8.0  // pixels per tick after the ramp completes
	cursorRampTime  = 0.75 // seconds of held movement to reach max speed
	cursorDebounce  = 2    // consecutive polls before a button edge is accepted
)

// CursorSource drives a virtual cursor from the keyboard (arrow keys or
// WASD, Space or Enter to draw) or a standard-layout gamepad d-pad. It is
// the fallback for platforms with neither a touch screen nor a mouse.
//
// Movement speed ramps from cursorBaseSpeed to cursorMaxSpeed while a
// direction is held, so short taps nudge a single pixel and long holds
// cross the screen quickly. The draw button is debounced: an edge must
// persist for cursorDebounce consecutive polls before it takes effect.
type CursorSource struct {
	x, y          float64
	width, height int

	speed  *gween.Tween
	moving bool
	dt     float32

	held    bool // debounced button state
	rawRun  int  // consecutive polls the raw state disagreed with held
	refresh bool // skip one sprite frame after a Poke

	readInput func() (dx, dy float64, sel bool)
	pads      []ebiten.GamepadID
	sprite    *ebiten.Image
}

// NewCursorSource creates a cursor bounded to a width-by-height area,
// starting at its center with the button up.
func NewCursorSource(width, height int) *CursorSource {
	c := &CursorSource{
		width:  width,
		height: height,
		x:      float64(width) / 2,
		y:      float64(height) / 2,
		dt:     1.0 / 60,
	}
	c.readInput = c.readDevices
	return c
}

// Position returns the cursor location in canvas pixels.
func (c *CursorSource) Position() Point {
	return Point{X: int(c.x), Y: int(c.y)}
}

// Poll advances the cursor by the held direction and reports the debounced
// button state with the cursor position as the contact point.
func (c *CursorSource) Poll() Sample {
	dx, dy, sel := c.readInput()

	if dx != 0 || dy != 0 {
		if !c.moving {
			c.moving = true
			c.speed = gween.New(cursorBaseSpeed, cursorMaxSpeed, cursorRampTime, ease.InQuad)
		}
		v, _ := c.speed.Update(c.dt)
		c.x = clampf(c.x+dx*float64(v), 0, float64(c.width-1))
		c.y = clampf(c.y+dy*float64(v), 0, float64(c.height-1))
	} else {
		c.moving = false
	}

	if sel != c.held {
		c.rawRun++
		if c.rawRun >= cursorDebounce {
			c.held = sel
			c.rawRun = 0
		}
	} else {
		c.rawRun = 0
	}

	if !c.held {
		return Sample{}
	}
	return Sample{Contact: true, Valid: true, Pos: c.Position()}
}

// Poke forces a sprite refresh: the cursor skips one frame and repaints on
// the next, the software equivalent of a hardware cursor hide/show.
func (c *CursorSource) Poke() {
	c.refresh = true
}

// Draw renders the cursor sprite centered on the cursor position. Call it
// after compositing the canvas so the cursor stays on top.
func (c *CursorSource) Draw(screen *ebiten.Image) {
	if c.refresh {
		c.refresh = false
		return
	}
	if c.sprite == nil {
		c.sprite = newCursorSprite()
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(c.x-cursorSize/2, c.y-cursorSize/2)
	screen.DrawImage(c.sprite, &op)
}

// readDevices polls the keyboard and any standard-layout gamepads for a
// movement direction and the draw button.
func (c *CursorSource) readDevices() (dx, dy float64, sel bool) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	sel = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyEnter)

	c.pads = ebiten.AppendGamepadIDs(c.pads[:0])
	for _, id := range c.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			dx--
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			dx++
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			dy--
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			dy++
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			sel = true
		}
	}
	return dx, dy, sel
}

// newCursorSprite builds the 20x20 outlined box sprite.
func newCursorSprite() *ebiten.Image {
	img := ebiten.NewImage(cursorSize, cursorSize)
	white := ColorWhite.RGBA()
	for i := 0; i < cursorSize; i++ {
		img.Set(0, i, white)
		img.Set(cursorSize-1, i, white)
		img.Set(i, 0, white)
		img.Set(i, cursorSize-1, white)
	}
	return img
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
