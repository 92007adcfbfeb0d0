package easel

// Canvas is the paint surface: a fixed-size grid of palette indices plus
// the active pen color. It is created once at startup and mutated only
// through Set, Plot, and Fill; display compositing reads it via RGBA.
//
// Canvas is not safe for concurrent mutation. The control loop is the only
// writer; a compositor may read the RGBA snapshot between ticks.
type Canvas struct {
	width   int
	height  int
	palette []Color
	cells   []uint8
	pen     int

	pix   []byte // RGBA scratch buffer, rebuilt lazily
	dirty bool
}

// NewCanvas creates a canvas of the given dimensions. If palette is nil,
// DefaultPalette is used. The palette is copied and immutable afterwards;
// it must hold at most 256 entries. Every cell starts at index 0 and the
// pen starts at DefaultPen (clamped to the palette length).
func NewCanvas(width, height int, palette []Color) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if palette == nil {
		palette = DefaultPalette
	}
	if len(palette) > 256 {
		palette = palette[:256]
	}
	pal := make([]Color, len(palette))
	copy(pal, palette)

	pen := DefaultPen
	if pen >= len(pal) {
		pen = len(pal) - 1
	}

	return &Canvas{
		width:   width,
		height:  height,
		palette: pal,
		cells:   make([]uint8, width*height),
		pen:     pen,
		pix:     make([]byte, width*height*4),
		dirty:   true,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// PaletteLen returns the number of palette entries.
func (c *Canvas) PaletteLen() int { return len(c.palette) }

// PaletteColor returns the palette entry at index. Out-of-range indices
// return the zero Color.
func (c *Canvas) PaletteColor(index int) Color {
	if index < 0 || index >= len(c.palette) {
		return Color{}
	}
	return c.palette[index]
}

// Contains reports whether (x, y) lies inside the canvas.
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes the palette index at (x, y) and reports whether the write
// landed. Out-of-bounds coordinates and out-of-range indices are rejected,
// not clamped; rasterizing near the screen edge relies on this being a
// silent no-op.
func (c *Canvas) Set(x, y, index int) bool {
	if !c.Contains(x, y) {
		return false
	}
	if index < 0 || index >= len(c.palette) {
		return false
	}
	c.cells[y*c.width+x] = uint8(index)
	c.dirty = true
	return true
}

// Plot writes the current pen color at (x, y). Same bounds behavior as Set.
func (c *Canvas) Plot(x, y int) bool {
	return c.Set(x, y, c.pen)
}

// At returns the palette index stored at (x, y), or -1 when the coordinate
// is out of bounds.
func (c *Canvas) At(x, y int) int {
	if !c.Contains(x, y) {
		return -1
	}
	return int(c.cells[y*c.width+x])
}

// Fill sets every cell to the given palette index. Out-of-range indices
// are ignored.
func (c *Canvas) Fill(index int) {
	if index < 0 || index >= len(c.palette) {
		return
	}
	for i := range c.cells {
		c.cells[i] = uint8(index)
	}
	c.dirty = true
}

// Pen returns the active pen color index.
func (c *Canvas) Pen() int { return c.pen }

// SetPen selects the active pen color and reports whether the index was
// accepted. Indices outside the palette leave the pen unchanged.
func (c *Canvas) SetPen(index int) bool {
	if index < 0 || index >= len(c.palette) {
		return false
	}
	c.pen = index
	return true
}

// Dirty reports whether the canvas changed since the last RGBA call.
func (c *Canvas) Dirty() bool { return c.dirty }

// RGBA returns the canvas composited to 8-bit RGBA, 4 bytes per pixel in
// row-major order, suitable for ebiten.Image.WritePixels. The buffer is
// reused across calls; callers must not retain it. Calling RGBA clears the
// dirty flag.
func (c *Canvas) RGBA() []byte {
	if !c.dirty {
		return c.pix
	}
	for i, cell := range c.cells {
		col := c.palette[cell]
		o := i * 4
		c.pix[o] = col.R
		c.pix[o+1] = col.G
		c.pix[o+2] = col.B
		c.pix[o+3] = 0xFF
	}
	c.dirty = false
	return c.pix
}
