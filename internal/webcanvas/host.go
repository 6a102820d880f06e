//go:build js && wasm

package webcanvas

import (
	"sync"
	"syscall/js"
	"time"

	"github.com/Thegreatvegan/Qura/internal/frameloop"
	"github.com/Thegreatvegan/Qura/internal/molecule"
)

// Host mounts a renderer on a canvas element. Presses start on the canvas;
// moves and releases are tracked on the window so a drag survives leaving
// the canvas. Resize fires for window resizes and for size changes of the
// canvas's parent.
type Host struct {
	canvas js.Value
	window js.Value
	loop   *frameloop.Loop
}

var _ molecule.Host = (*Host)(nil)

func NewHost(canvas js.Value, loop *frameloop.Loop) *Host {
	return &Host{canvas: canvas, window: js.Global(), loop: loop}
}

func (h *Host) OnFrame(fn func()) func() {
	return h.loop.OnFrame(func(time.Duration) { fn() })
}

func (h *Host) On(kind molecule.EventKind, fn func(molecule.Event)) func() {
	switch kind {
	case molecule.MouseDown, molecule.MouseLeave, molecule.TouchStart:
		return Listen(h.canvas, kind.String(), func(e js.Value) { fn(toEvent(e)) })
	case molecule.Resize:
		return h.onResize(func() { fn(molecule.Event{}) })
	default:
		return Listen(h.window, kind.String(), func(e js.Value) { fn(toEvent(e)) })
	}
}

func (h *Host) ContainerSize() (int, int) {
	parent := h.canvas.Get("parentElement")
	if parent.IsNull() || parent.IsUndefined() {
		return h.canvas.Get("width").Int(), h.canvas.Get("height").Int()
	}
	return parent.Get("clientWidth").Int(), parent.Get("clientHeight").Int()
}

func (h *Host) onResize(fn func()) func() {
	cancels := []func(){Listen(h.window, "resize", func(js.Value) { fn() })}

	ctor := h.window.Get("ResizeObserver")
	parent := h.canvas.Get("parentElement")
	if ctor.Truthy() && parent.Truthy() {
		cb := js.FuncOf(func(js.Value, []js.Value) any {
			fn()
			return nil
		})
		observer := ctor.New(cb)
		observer.Call("observe", parent)
		cancels = append(cancels, func() {
			observer.Call("disconnect")
			cb.Release()
		})
	}

	return once(func() {
		for _, c := range cancels {
			c()
		}
	})
}

// Listen adds a DOM event listener and returns an idempotent func that
// removes it and releases the callback.
func Listen(target js.Value, event string, fn func(js.Value)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		} else {
			fn(js.Undefined())
		}
		return nil
	})
	target.Call("addEventListener", event, cb)

	return once(func() {
		target.Call("removeEventListener", event, cb)
		cb.Release()
	})
}

func toEvent(e js.Value) molecule.Event {
	if !e.Truthy() {
		return molecule.Event{}
	}
	if touches := e.Get("touches"); touches.Truthy() {
		ev := molecule.Event{Touches: touches.Get("length").Int()}
		if ev.Touches > 0 {
			first := touches.Index(0)
			ev.X = first.Get("clientX").Float()
			ev.Y = first.Get("clientY").Float()
		}
		return ev
	}
	ev := molecule.Event{}
	if x := e.Get("clientX"); x.Type() == js.TypeNumber {
		ev.X = x.Float()
		ev.Y = e.Get("clientY").Float()
	}
	return ev
}

func once(fn func()) func() {
	var o sync.Once
	return func() { o.Do(fn) }
}
