//go:build js && wasm

package webcanvas

import (
	"sync"
	"syscall/js"
	"time"

	"github.com/Thegreatvegan/Qura/internal/frameloop"
)

// AnimationFrames is a frameloop.Scheduler over window.requestAnimationFrame.
// Each request holds one js.Func, released when it fires or is cancelled.
type AnimationFrames struct {
	window js.Value

	mu    sync.Mutex
	funcs map[int]js.Func
}

var _ frameloop.Scheduler = (*AnimationFrames)(nil)

func NewAnimationFrames() *AnimationFrames {
	return &AnimationFrames{
		window: js.Global(),
		funcs:  make(map[int]js.Func),
	}
}

func (a *AnimationFrames) RequestFrame(fn func(now time.Duration)) int {
	var handle int
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		a.mu.Lock()
		delete(a.funcs, handle)
		a.mu.Unlock()
		cb.Release()

		var now time.Duration
		if len(args) > 0 {
			now = time.Duration(args[0].Float() * float64(time.Millisecond))
		}
		fn(now)
		return nil
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	handle = a.window.Call("requestAnimationFrame", cb).Int()
	a.funcs[handle] = cb
	return handle
}

func (a *AnimationFrames) CancelFrame(handle int) {
	a.mu.Lock()
	cb, ok := a.funcs[handle]
	delete(a.funcs, handle)
	a.mu.Unlock()

	if ok {
		a.window.Call("cancelAnimationFrame", handle)
		cb.Release()
	}
}
