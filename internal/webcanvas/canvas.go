//go:build js && wasm

// Package webcanvas binds the molecule renderer and the backdrop to the
// browser: a CanvasRenderingContext2D backed Canvas, a requestAnimationFrame
// scheduler and a DOM event Host.
package webcanvas

import (
	"syscall/js"

	"github.com/Thegreatvegan/Qura/internal/molecule"
)

// Canvas draws on an HTML canvas element through its 2D context.
type Canvas struct {
	el  js.Value
	ctx js.Value
}

var _ molecule.Canvas = (*Canvas)(nil)

func NewCanvas(el js.Value) *Canvas {
	return &Canvas{el: el, ctx: el.Call("getContext", "2d")}
}

// Element returns the underlying canvas element.
func (c *Canvas) Element() js.Value { return c.el }

func (c *Canvas) Width() int  { return c.el.Get("width").Int() }
func (c *Canvas) Height() int { return c.el.Get("height").Int() }

func (c *Canvas) SetSize(width, height int) {
	c.el.Set("width", width)
	c.el.Set("height", height)
}

func (c *Canvas) ClearRect(x, y, w, h float64) { c.ctx.Call("clearRect", x, y, w, h) }

func (c *Canvas) BeginPath()          { c.ctx.Call("beginPath") }
func (c *Canvas) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }
func (c *Canvas) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }

func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	c.ctx.Call("arc", x, y, radius, startAngle, endAngle)
}

func (c *Canvas) SetStrokeColor(color string) { c.ctx.Set("strokeStyle", color) }
func (c *Canvas) SetLineWidth(width float64)  { c.ctx.Set("lineWidth", width) }
func (c *Canvas) Stroke()                     { c.ctx.Call("stroke") }

func (c *Canvas) SetFillColor(color string) { c.ctx.Set("fillStyle", color) }

func (c *Canvas) SetFillGradient(g molecule.RadialGradient) {
	grad := c.ctx.Call("createRadialGradient", g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	for _, s := range g.Stops {
		grad.Call("addColorStop", s.Offset, s.Color)
	}
	c.ctx.Set("fillStyle", grad)
}

func (c *Canvas) Fill() { c.ctx.Call("fill") }
