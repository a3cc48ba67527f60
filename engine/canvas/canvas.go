package canvas

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLA is the color record attached to faces and paint calls: hue in
// degrees, saturation and lightness in percent, alpha in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// RGBA converts to an alpha-premultiplied 8-bit color.
func (c HSLA) RGBA() color.RGBA {
	rgb := colorful.Hsl(c.H, c.S/100, c.L/100)
	r, g, b := rgb.Clamped().RGB255()
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(r)*a + 0.5),
		G: uint8(float64(g)*a + 0.5),
		B: uint8(float64(b)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

/**
 * @brief The 2D immediate-mode drawing surface the renderer paints on.
 * Implementations provide a mutable pixel dimension pair, rectangular
 * clearing, and canvas-style path primitives. The renderer never assumes
 * anything beyond this contract.
 */
type Surface interface {
	Size() (width, height int)
	SetSize(width, height int)
	// Clear resets the region to the fill color, or to transparent when
	// fill is nil.
	Clear(x, y, width, height int, fill *HSLA)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Stroke draws the edges of the current path.
	Stroke(c HSLA)
	// Fill paints the interior of the current path.
	Fill(c HSLA)
	// Circle paints a filled disc, used for vertex markers.
	Circle(x, y, radius float64, c HSLA)
}
