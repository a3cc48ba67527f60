package canvas

import (
	"image"
	"image/color"
	"image/draw"
	m "math"

	"golang.org/x/image/vector"
)

type pathOpKind uint8

const (
	opMoveTo pathOpKind = iota
	opLineTo
	opClosePath
)

type pathOp struct {
	kind pathOpKind
	x, y float64
}

// Image is the software Surface: an RGBA framebuffer with path filling done
// by the x/image/vector rasterizer and single-pixel strokes drawn directly.
type Image struct {
	rgba *image.RGBA
	path []pathOp
}

func NewImage(width, height int) *Image {
	return &Image{
		rgba: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBA exposes the backing framebuffer for presentation and HUD drawing.
func (c *Image) RGBA() *image.RGBA {
	return c.rgba
}

// Pix exposes the raw premultiplied pixel buffer in row-major RGBA order.
func (c *Image) Pix() []byte {
	return c.rgba.Pix
}

func (c *Image) Size() (int, int) {
	b := c.rgba.Bounds()
	return b.Dx(), b.Dy()
}

// SetSize reallocates the framebuffer. Existing pixel content is dropped.
func (c *Image) SetSize(width, height int) {
	c.rgba = image.NewRGBA(image.Rect(0, 0, width, height))
	c.path = c.path[:0]
}

func (c *Image) Clear(x, y, width, height int, fill *HSLA) {
	rect := image.Rect(x, y, x+width, y+height).Intersect(c.rgba.Bounds())
	var src color.RGBA
	if fill != nil {
		src = fill.RGBA()
	}
	draw.Draw(c.rgba, rect, image.NewUniform(src), image.Point{}, draw.Src)
}

func (c *Image) BeginPath() {
	c.path = c.path[:0]
}

func (c *Image) MoveTo(x, y float64) {
	c.path = append(c.path, pathOp{kind: opMoveTo, x: x, y: y})
}

func (c *Image) LineTo(x, y float64) {
	c.path = append(c.path, pathOp{kind: opLineTo, x: x, y: y})
}

func (c *Image) ClosePath() {
	c.path = append(c.path, pathOp{kind: opClosePath})
}

func (c *Image) Fill(col HSLA) {
	if len(c.path) == 0 {
		return
	}
	w, h := c.Size()
	r := vector.NewRasterizer(w, h)
	open := false
	for _, op := range c.path {
		switch op.kind {
		case opMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(op.x), float32(op.y))
			open = true
		case opLineTo:
			if open {
				r.LineTo(float32(op.x), float32(op.y))
			}
		case opClosePath:
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ClosePath()
	}
	r.Draw(c.rgba, c.rgba.Bounds(), image.NewUniform(col.RGBA()), image.Point{})
}

func (c *Image) Stroke(col HSLA) {
	src := col.RGBA()
	var curX, curY, startX, startY float64
	started := false
	for _, op := range c.path {
		switch op.kind {
		case opMoveTo:
			curX, curY = op.x, op.y
			startX, startY = op.x, op.y
			started = true
		case opLineTo:
			if started {
				c.line(curX, curY, op.x, op.y, src)
				curX, curY = op.x, op.y
			}
		case opClosePath:
			if started {
				c.line(curX, curY, startX, startY, src)
				curX, curY = startX, startY
			}
		}
	}
}

func (c *Image) Circle(x, y, radius float64, col HSLA) {
	if radius <= 0 {
		return
	}
	const segments = 24
	w, h := c.Size()
	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(x+radius), float32(y))
	for i := 1; i < segments; i++ {
		a := 2 * m.Pi * float64(i) / segments
		r.LineTo(float32(x+radius*m.Cos(a)), float32(y+radius*m.Sin(a)))
	}
	r.ClosePath()
	r.Draw(c.rgba, c.rgba.Bounds(), image.NewUniform(col.RGBA()), image.Point{})
}

// line draws a single-pixel segment with Bresenham's algorithm, blending
// over the existing pixels.
func (c *Image) line(x0f, y0f, x1f, y1f float64, src color.RGBA) {
	x0, y0 := int(m.Round(x0f)), int(m.Round(y0f))
	x1, y1 := int(m.Round(x1f)), int(m.Round(y1f))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.blend(x0, y0, src)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Image) blend(x, y int, src color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.rgba.Bounds()) {
		return
	}
	if src.A == 0xff {
		c.rgba.SetRGBA(x, y, src)
		return
	}
	dst := c.rgba.RGBAAt(x, y)
	inv := uint32(0xff - src.A)
	c.rgba.SetRGBA(x, y, color.RGBA{
		R: uint8(uint32(src.R) + uint32(dst.R)*inv/0xff),
		G: uint8(uint32(src.G) + uint32(dst.G)*inv/0xff),
		B: uint8(uint32(src.B) + uint32(dst.B)*inv/0xff),
		A: uint8(uint32(src.A) + uint32(dst.A)*inv/0xff),
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
