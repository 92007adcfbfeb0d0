package easel

import "image/color"

// Color is a 24-bit RGB palette entry. The canvas never stores colors
// directly, only indices into its palette; Color is what an index resolves
// to at compositing time.
type Color struct {
	R, G, B uint8
}

// Standard palette colors.
var (
	ColorBlack  = Color{0x00, 0x00, 0x00}
	ColorRed    = Color{0xFF, 0x00, 0x00}
	ColorOrange = Color{0xFF, 0xA5, 0x00}
	ColorYellow = Color{0xFF, 0xFF, 0x00}
	ColorGreen  = Color{0x00, 0xFF, 0x00}
	ColorBlue   = Color{0x00, 0x00, 0xFF}
	ColorPurple = Color{0x80, 0x00, 0x80}
	ColorWhite  = Color{0xFF, 0xFF, 0xFF}
)

// DefaultPalette is the standard eight-color pen palette. Index 0 doubles
// as the background color on a freshly created canvas.
var DefaultPalette = []Color{
	ColorBlack,
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorPurple,
	ColorWhite,
}

// DefaultPen is the pen color index a new canvas starts with (white).
const DefaultPen = 7

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Point is an integer pixel coordinate. The origin is the top-left corner
// of the canvas, with Y increasing downward.
type Point struct {
	X, Y int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
