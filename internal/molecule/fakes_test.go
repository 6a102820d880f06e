package molecule

import "fmt"

// recordingCanvas logs every draw call so tests can assert on order and
// arguments.
type recordingCanvas struct {
	width, height int

	ops       []string
	strokes   [][4]float64 // x0, y0, x1, y1 of each stroked segment
	fills     []fillCall
	gradients []RadialGradient

	path       []float64
	arc        [3]float64
	fillStyle  string
	gradient   *RadialGradient
	strokeSty  string
	lineWidth  float64
	clearCalls int
}

type fillCall struct {
	X, Y, Radius float64
	Style        string
	Gradient     *RadialGradient
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{width: w, height: h}
}

func (c *recordingCanvas) Width() int  { return c.width }
func (c *recordingCanvas) Height() int { return c.height }

func (c *recordingCanvas) SetSize(w, h int) {
	c.width, c.height = w, h
	c.ops = append(c.ops, fmt.Sprintf("size %dx%d", w, h))
}

func (c *recordingCanvas) ClearRect(x, y, w, h float64) {
	c.clearCalls++
	c.ops = append(c.ops, "clear")
}

func (c *recordingCanvas) BeginPath() { c.path = c.path[:0] }

func (c *recordingCanvas) MoveTo(x, y float64) { c.path = append(c.path[:0], x, y) }

func (c *recordingCanvas) LineTo(x, y float64) { c.path = append(c.path, x, y) }

func (c *recordingCanvas) Arc(x, y, r, start, end float64) {
	c.arc = [3]float64{x, y, r}
}

func (c *recordingCanvas) SetStrokeColor(color string) { c.strokeSty = color }
func (c *recordingCanvas) SetLineWidth(w float64)      { c.lineWidth = w }

func (c *recordingCanvas) Stroke() {
	if len(c.path) >= 4 {
		c.strokes = append(c.strokes, [4]float64{c.path[0], c.path[1], c.path[2], c.path[3]})
	}
	c.ops = append(c.ops, "stroke")
}

func (c *recordingCanvas) SetFillColor(color string) {
	c.fillStyle = color
	c.gradient = nil
}

func (c *recordingCanvas) SetFillGradient(g RadialGradient) {
	c.gradients = append(c.gradients, g)
	c.gradient = &g
	c.fillStyle = ""
}

func (c *recordingCanvas) Fill() {
	c.fills = append(c.fills, fillCall{
		X: c.arc[0], Y: c.arc[1], Radius: c.arc[2],
		Style:    c.fillStyle,
		Gradient: c.gradient,
	})
	c.ops = append(c.ops, "fill")
}

// atomFills returns only the gradient fills, one per drawn atom.
func (c *recordingCanvas) atomFills() []fillCall {
	var out []fillCall
	for _, f := range c.fills {
		if f.Gradient != nil {
			out = append(out, f)
		}
	}
	return out
}

func (c *recordingCanvas) reset() {
	c.ops = nil
	c.strokes = nil
	c.fills = nil
	c.gradients = nil
	c.clearCalls = 0
}

// fakeHost is a Host whose frames and events are fired by the test.
type fakeHost struct {
	width, height int

	nextID    int
	frames    map[int]func()
	listeners map[EventKind]map[int]func(Event)
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{
		width:     w,
		height:    h,
		frames:    make(map[int]func()),
		listeners: make(map[EventKind]map[int]func(Event)),
	}
}

func (h *fakeHost) OnFrame(fn func()) func() {
	h.nextID++
	id := h.nextID
	h.frames[id] = fn
	return func() { delete(h.frames, id) }
}

func (h *fakeHost) On(kind EventKind, fn func(Event)) func() {
	h.nextID++
	id := h.nextID
	if h.listeners[kind] == nil {
		h.listeners[kind] = make(map[int]func(Event))
	}
	h.listeners[kind][id] = fn
	return func() { delete(h.listeners[kind], id) }
}

func (h *fakeHost) ContainerSize() (int, int) { return h.width, h.height }

func (h *fakeHost) tick(n int) {
	for i := 0; i < n; i++ {
		for _, fn := range h.frames {
			fn()
		}
	}
}

func (h *fakeHost) emit(kind EventKind, e Event) {
	for _, fn := range h.listeners[kind] {
		fn(e)
	}
}

func (h *fakeHost) resize(w, hgt int) {
	h.width, h.height = w, hgt
	h.emit(Resize, Event{})
}

func (h *fakeHost) active() int {
	n := len(h.frames)
	for _, m := range h.listeners {
		n += len(m)
	}
	return n
}
