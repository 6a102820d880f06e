package molecule

// EventKind identifies an input or layout notification from the host.
type EventKind int

const (
	MouseDown EventKind = iota
	MouseMove
	MouseUp
	MouseLeave
	TouchStart
	TouchMove
	TouchEnd
	Resize
)

var eventNames = [...]string{
	MouseDown:  "mousedown",
	MouseMove:  "mousemove",
	MouseUp:    "mouseup",
	MouseLeave: "mouseleave",
	TouchStart: "touchstart",
	TouchMove:  "touchmove",
	TouchEnd:   "touchend",
	Resize:     "resize",
}

// String returns the DOM event name.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event carries the client-space pointer position. For touch events X and
// Y belong to the first touch point and Touches is the number of active
// touches.
type Event struct {
	X, Y    float64
	Touches int
}

// Host is the environment a renderer is mounted into: a per-frame
// callback source, an input event source and the canvas container size.
// Every registration returns a cancel func that releases it.
type Host interface {
	OnFrame(fn func()) (cancel func())
	On(kind EventKind, fn func(Event)) (cancel func())
	ContainerSize() (width, height int)
}

// Mounted reports whether the renderer is currently mounted.
func (r *Renderer) Mounted() bool {
	return r.host != nil
}

// Mount attaches the renderer to host and canvas: the state is reset, the
// canvas is sized to its container, input listeners are registered and
// the frame callback starts. Mounting a mounted renderer unmounts first.
func (r *Renderer) Mount(host Host, canvas Canvas) {
	r.Unmount()

	r.mountID++
	id := r.mountID
	r.host = host
	r.canvas = canvas
	// Rotating is restored through setRotating to notify the change hook
	rotating := r.state.Rotating
	r.state = initialState()
	r.state.Rotating = rotating
	r.setRotating(true)
	r.fitContainer()

	// Callbacks from a previous mount must not touch the current state.
	live := func() bool { return r.host != nil && r.mountID == id }
	on := func(kind EventKind, fn func(Event)) {
		r.cancels = append(r.cancels, host.On(kind, func(e Event) {
			if live() {
				fn(e)
			}
		}))
	}

	on(MouseDown, func(e Event) { r.PointerDown(e.X, e.Y) })
	on(MouseMove, func(e Event) { r.PointerMove(e.X, e.Y) })
	on(MouseUp, func(Event) { r.PointerUp() })
	on(MouseLeave, func(Event) { r.PointerUp() })
	on(TouchStart, func(e Event) {
		if e.Touches == 1 {
			r.PointerDown(e.X, e.Y)
		}
	})
	on(TouchMove, func(e Event) {
		if e.Touches == 1 {
			r.PointerMove(e.X, e.Y)
		}
	})
	on(TouchEnd, func(Event) { r.PointerUp() })
	on(Resize, func(Event) { r.fitContainer() })

	r.cancels = append(r.cancels, host.OnFrame(func() {
		if live() {
			r.Frame()
		}
	}))
}

// Unmount cancels the frame callback and every listener and detaches the
// canvas. It is safe to call when not mounted.
func (r *Renderer) Unmount() {
	for i := len(r.cancels) - 1; i >= 0; i-- {
		if cancel := r.cancels[i]; cancel != nil {
			cancel()
		}
	}
	r.cancels = nil
	r.host = nil
	r.canvas = nil
}

func (r *Renderer) fitContainer() {
	if r.host == nil || r.canvas == nil {
		return
	}
	w, h := r.host.ContainerSize()
	r.canvas.SetSize(w, h)
}
