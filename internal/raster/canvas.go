// Package raster renders the molecule scene to images on the server, for
// the page's no-script poster, the /molecule.png and /molecule.gif
// endpoints and the render command.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"

	"github.com/Thegreatvegan/Qura/internal/molecule"
)

// Canvas is a molecule.Canvas backed by a gg raster context. Path
// operations follow the HTML canvas model: Fill and Stroke keep the
// current path until the next BeginPath.
type Canvas struct {
	dc *gg.Context

	fill      gg.Pattern
	stroke    gg.Pattern
	lineWidth float64
}

var _ molecule.Canvas = (*Canvas)(nil)

// NewCanvas returns a transparent width x height canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.SetSize(width, height)
	return c
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// SetSize replaces the pixel buffer and resets the drawing state, like
// assigning canvas.width in a browser.
func (c *Canvas) SetSize(width, height int) {
	c.dc = gg.NewContext(max(width, 1), max(height, 1))
	c.fill = gg.NewSolidPattern(color.Black)
	c.stroke = gg.NewSolidPattern(color.Black)
	c.lineWidth = 1
}

// Image returns the backing image. It is reused by later draws.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
	draw.Draw(c.Image(), r, image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) BeginPath() { c.dc.ClearPath() }

func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	c.dc.DrawArc(x, y, radius, startAngle, endAngle)
}

// SetStrokeColor ignores colours it cannot parse, as a browser does.
func (c *Canvas) SetStrokeColor(s string) {
	if col, err := ParseColor(s); err == nil {
		c.stroke = gg.NewSolidPattern(col)
	}
}

func (c *Canvas) SetLineWidth(width float64) {
	if width > 0 {
		c.lineWidth = width
	}
}

func (c *Canvas) Stroke() {
	c.dc.SetStrokeStyle(c.stroke)
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.StrokePreserve()
}

// SetFillColor ignores colours it cannot parse, as a browser does.
func (c *Canvas) SetFillColor(s string) {
	if col, err := ParseColor(s); err == nil {
		c.fill = gg.NewSolidPattern(col)
	}
}

func (c *Canvas) SetFillGradient(g molecule.RadialGradient) {
	grad := gg.NewRadialGradient(g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	for _, stop := range g.Stops {
		col, err := ParseColor(stop.Color)
		if err != nil {
			continue
		}
		grad.AddColorStop(stop.Offset, col)
	}
	c.fill = grad
}

func (c *Canvas) Fill() {
	c.dc.SetFillStyle(c.fill)
	c.dc.FillPreserve()
}

// Flatten composites the canvas over an opaque background.
func (c *Canvas) Flatten(background color.Color) *image.RGBA {
	src := c.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
	return dst
}
