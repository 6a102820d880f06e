package molecule

import "math"

const (
	// AutoRotateStep is the auto-rotation angle added per frame, in radians.
	AutoRotateStep = 0.01
	// AutoTiltAmplitude scales the sinusoidal X-axis wobble of auto-rotation.
	AutoTiltAmplitude = 0.5
	// DragSensitivity converts pointer movement in pixels to radians.
	DragSensitivity = 0.01
)

// State is the transient render state. It lives as long as one mount of
// the renderer and is never persisted.
type State struct {
	// Manual rotation offsets accumulated from drags
	RotationX float64
	RotationY float64
	// Auto-rotation accumulator, advanced only while Rotating
	Angle float64

	Rotating bool
	Dragging bool
	LastX    float64
	LastY    float64
}

func initialState() State {
	return State{Rotating: true}
}

// Renderer owns the model, the transient rotation state and the canvas it
// draws on. It is driven from a single UI thread and is not safe for
// concurrent use.
type Renderer struct {
	model  Model
	state  State
	canvas Canvas

	host    Host
	cancels []func()
	mountID uint64

	onRotating func(rotating bool)
}

// NewRenderer returns a renderer for m with auto-rotation enabled.
func NewRenderer(m Model) *Renderer {
	return &Renderer{
		model: m,
		state: initialState(),
	}
}

// Model returns the structure being rendered.
func (r *Renderer) Model() Model {
	return r.model
}

// State returns a copy of the current render state.
func (r *Renderer) State() State {
	return r.state
}

// Canvas returns the attached canvas, or nil.
func (r *Renderer) Canvas() Canvas {
	return r.canvas
}

// Attach sets the canvas Frame draws on without subscribing to any host
// events. Passing nil detaches.
func (r *Renderer) Attach(c Canvas) {
	r.canvas = c
}

// Rotation returns the total rotation for the current state: the manual
// offsets plus, while auto-rotating, the auto-angle contribution.
func (r *Renderer) Rotation() Rotation {
	rot := Rotation{X: r.state.RotationX, Y: r.state.RotationY}
	if r.state.Rotating {
		rot.X += math.Sin(r.state.Angle) * AutoTiltAmplitude
		rot.Y += r.state.Angle
	}
	return rot
}

// SetRotation replaces the manual rotation offsets.
func (r *Renderer) SetRotation(rot Rotation) {
	r.state.RotationX = rot.X
	r.state.RotationY = rot.Y
}

// SetRotating enables or disables auto-rotation.
func (r *Renderer) SetRotating(on bool) {
	r.setRotating(on)
}

// ToggleRotation flips auto-rotation and returns the new setting. Manual
// offsets are kept, so auto-rotation resumes on top of them.
func (r *Renderer) ToggleRotation() bool {
	r.setRotating(!r.state.Rotating)
	return r.state.Rotating
}

// OnRotatingChange registers fn to be called whenever auto-rotation turns
// on or off, whether from the toggle, a drag or a remount. A nil fn clears
// the hook.
func (r *Renderer) OnRotatingChange(fn func(rotating bool)) {
	r.onRotating = fn
}

func (r *Renderer) setRotating(on bool) {
	if r.state.Rotating == on {
		return
	}
	r.state.Rotating = on
	if r.onRotating != nil {
		r.onRotating(on)
	}
}

// Advance moves the animation forward one frame without drawing and
// returns the rotation for that frame.
func (r *Renderer) Advance() Rotation {
	if r.state.Rotating {
		r.state.Angle += AutoRotateStep
	}
	return r.Rotation()
}

// Frame renders one animation frame. It is a no-op while no canvas is
// attached.
func (r *Renderer) Frame() {
	c := r.canvas
	if c == nil {
		return
	}

	w, h := float64(c.Width()), float64(c.Height())
	c.ClearRect(0, 0, w, h)

	rot := r.Advance()
	atoms := Project(r.model, rot, w/2, h/2)

	r.drawBonds(c, atoms)
	for _, a := range atoms {
		drawAtom(c, a)
	}
}

// drawBonds strokes every bond in declaration order, independent of depth.
func (r *Renderer) drawBonds(c Canvas, atoms []Projected) {
	byIndex := make([]*Projected, len(r.model.Atoms))
	for i := range atoms {
		byIndex[atoms[i].Index] = &atoms[i]
	}

	for _, b := range r.model.Bonds {
		if b.From < 0 || b.From >= len(byIndex) || b.To < 0 || b.To >= len(byIndex) {
			continue
		}
		from, to := byIndex[b.From], byIndex[b.To]
		if from == nil || to == nil {
			continue
		}
		c.BeginPath()
		c.MoveTo(from.X, from.Y)
		c.LineTo(to.X, to.Y)
		c.SetStrokeColor(BondColor)
		c.SetLineWidth(BondWidth)
		c.Stroke()
	}
}

func drawAtom(c Canvas, a Projected) {
	hx := a.X - a.Radius*HighlightRatio
	hy := a.Y - a.Radius*HighlightRatio

	c.BeginPath()
	c.Arc(a.X, a.Y, a.Radius, 0, 2*math.Pi)
	c.SetFillGradient(RadialGradient{
		X0: hx, Y0: hy, R0: 0,
		X1: a.X, Y1: a.Y, R1: a.Radius,
		Stops: []ColorStop{
			{Offset: 0, Color: GradientStart},
			{Offset: 1, Color: a.Color},
		},
	})
	c.Fill()

	c.BeginPath()
	c.Arc(hx, hy, a.Radius*HighlightRatio, 0, 2*math.Pi)
	c.SetFillColor(HighlightColor)
	c.Fill()
}

// PointerDown starts a drag at (x, y) and stops auto-rotation.
func (r *Renderer) PointerDown(x, y float64) {
	r.state.Dragging = true
	r.setRotating(false)
	r.state.LastX = x
	r.state.LastY = y
}

// PointerMove applies the movement since the last recorded pointer
// position to the manual offsets while dragging.
func (r *Renderer) PointerMove(x, y float64) {
	if !r.state.Dragging {
		return
	}
	dx := x - r.state.LastX
	dy := y - r.state.LastY

	r.state.RotationY += dx * DragSensitivity
	r.state.RotationX += dy * DragSensitivity

	r.state.LastX = x
	r.state.LastY = y
}

// PointerUp ends a drag.
func (r *Renderer) PointerUp() {
	r.state.Dragging = false
}

// Resize sets the canvas pixel size. No-op without a canvas.
func (r *Renderer) Resize(width, height int) {
	if r.canvas == nil {
		return
	}
	r.canvas.SetSize(width, height)
}
