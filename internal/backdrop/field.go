// Package backdrop renders the page's decorative animations: the drifting
// particle background and the hero's DNA helix and quantum circuit. Every
// element is a Sprite whose properties are keyframed Tracks, so a frame is
// a pure function of the field time.
package backdrop

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is the subset of a 2D drawing context the backdrop needs. Any
// molecule.Canvas satisfies it.
type Canvas interface {
	Width() int
	Height() int
	ClearRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	SetStrokeColor(color string)
	SetLineWidth(width float64)
	Stroke()
	SetFillColor(color string)
	Fill()
}

// Shape is how a sprite is drawn.
type Shape int

const (
	Circle Shape = iota
	Line
)

// Sprite is one animated element. Its position is Anchor (a fraction of
// the field size) plus Offset (pixels). Nil tracks take their defaults:
// zero anchor and offset, opacity and scale of one.
type Sprite struct {
	Shape Shape
	Color colorful.Color
	// Alpha multiplies the opacity track
	Alpha float64
	// Circle radius or line thickness, in pixels
	Size float64
	// Line direction in radians
	Angle float64

	AnchorX, AnchorY *Track
	OffsetX, OffsetY *Track
	Opacity          *Track
	Scale            *Track
	// Line length in pixels
	Length *Track
}

// SpriteState is a sprite evaluated at one instant, in field pixels.
type SpriteState struct {
	X, Y    float64
	Radius  float64
	Length  float64
	Opacity float64
}

// Field is a set of sprites animated on a shared clock.
type Field struct {
	Width, Height float64
	// Opacity applies to the whole field
	Opacity float64
	Sprites []Sprite

	now time.Duration
}

// Now returns the field clock.
func (f *Field) Now() time.Duration { return f.now }

// Advance moves the field clock forward by dt.
func (f *Field) Advance(dt time.Duration) {
	if dt > 0 {
		f.now += dt
	}
}

// Seek sets the field clock.
func (f *Field) Seek(t time.Duration) {
	f.now = t
}

// Resize changes the pixel size anchors are resolved against.
func (f *Field) Resize(width, height float64) {
	f.Width, f.Height = width, height
}

// State evaluates sprite i at the current field time.
func (f *Field) State(i int) SpriteState {
	s := &f.Sprites[i]
	t := f.now

	scale := value(s.Scale, t, 1)
	st := SpriteState{
		X:       value(s.AnchorX, t, 0)*f.Width + value(s.OffsetX, t, 0),
		Y:       value(s.AnchorY, t, 0)*f.Height + value(s.OffsetY, t, 0),
		Opacity: clamp01(value(s.Opacity, t, 1) * s.Alpha * f.Opacity),
		Length:  value(s.Length, t, 0),
	}
	if s.Shape == Circle {
		st.Radius = s.Size * scale
	}
	return st
}

// Draw clears c and paints every visible sprite in order.
func (f *Field) Draw(c Canvas) {
	c.ClearRect(0, 0, float64(c.Width()), float64(c.Height()))

	for i := range f.Sprites {
		s := &f.Sprites[i]
		st := f.State(i)
		if st.Opacity <= 0 {
			continue
		}
		style := cssColor(s.Color, st.Opacity)

		switch s.Shape {
		case Circle:
			if st.Radius <= 0 {
				continue
			}
			c.BeginPath()
			c.Arc(st.X, st.Y, st.Radius, 0, 2*math.Pi)
			c.SetFillColor(style)
			c.Fill()
		case Line:
			if st.Length <= 0 {
				continue
			}
			c.BeginPath()
			c.MoveTo(st.X, st.Y)
			c.LineTo(st.X+math.Cos(s.Angle)*st.Length, st.Y+math.Sin(s.Angle)*st.Length)
			c.SetStrokeColor(style)
			c.SetLineWidth(s.Size)
			c.Stroke()
		}
	}
}

func value(tr *Track, t time.Duration, def float64) float64 {
	if tr == nil {
		return def
	}
	return tr.Value(t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func cssColor(c colorful.Color, alpha float64) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", r, g, b, alpha)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("backdrop: bad colour %q: %v", s, err))
	}
	return c
}
