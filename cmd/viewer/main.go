//go:build js && wasm

// Command viewer is the page's WebAssembly client. It runs the molecule
// viewer, the decorative canvases and the navbar scroll style off one
// animation loop.
package main

import (
	"math"
	"syscall/js"
	"time"

	"github.com/Thegreatvegan/Qura/internal/backdrop"
	"github.com/Thegreatvegan/Qura/internal/frameloop"
	"github.com/Thegreatvegan/Qura/internal/molecule"
	"github.com/Thegreatvegan/Qura/internal/navigation"
	"github.com/Thegreatvegan/Qura/internal/webcanvas"
)

func main() {
	doc := js.Global().Get("document")
	window := js.Global()
	byID := func(id string) js.Value { return doc.Call("getElementById", id) }

	loop := frameloop.New(webcanvas.NewAnimationFrames())

	if el := byID(navigation.MoleculeCanvasID); el.Truthy() {
		mountMolecule(el, byID(navigation.MoleculeToggleID), loop)
	}

	reduced := window.Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()

	if el := byID(navigation.BackdropCanvasID); el.Truthy() {
		c := webcanvas.NewCanvas(el)
		w, h := viewport(window)
		c.SetSize(w, h)
		field := backdrop.NewParticleField(uint64(time.Now().UnixNano()), float64(w), float64(h))
		webcanvas.Listen(window, "resize", func(js.Value) {
			w, h := viewport(window)
			c.SetSize(w, h)
			field.Resize(float64(w), float64(h))
			field.Draw(c)
		})
		animate(loop, field, c, reduced)
	}

	if el := byID(navigation.HelixCanvasID); el.Truthy() {
		animate(loop, backdrop.NewHelix(), webcanvas.NewCanvas(el), reduced)
	}
	if el := byID(navigation.CircuitCanvasID); el.Truthy() {
		animate(loop, backdrop.NewCircuit(), webcanvas.NewCanvas(el), reduced)
	}

	if nav := byID(navigation.NavbarID); nav.Truthy() {
		trackScroll(window, nav)
	}

	select {}
}

func mountMolecule(el, toggle js.Value, loop *frameloop.Loop) {
	r := molecule.NewRenderer(molecule.NewModel())

	if toggle.Truthy() {
		// drags stop rotation as well
		r.OnRotatingChange(func(rotating bool) { syncToggle(toggle, rotating) })
		webcanvas.Listen(toggle, "click", func(js.Value) { r.ToggleRotation() })
	}

	r.Mount(webcanvas.NewHost(el, loop), webcanvas.NewCanvas(el))
}

func syncToggle(toggle js.Value, rotating bool) {
	label := "Resume rotation"
	if rotating {
		label = "Pause rotation"
	}
	toggle.Call("setAttribute", "data-rotating", boolAttr(rotating))
	toggle.Call("setAttribute", "aria-label", label)
}

// animate plays f, or draws a single frame when the user prefers reduced
// motion.
func animate(loop *frameloop.Loop, f *backdrop.Field, c *webcanvas.Canvas, still bool) {
	if still {
		f.Draw(c)
		return
	}
	backdrop.Play(loop, f, c)
}

func trackScroll(window, nav js.Value) {
	scrolled := false
	update := func() {
		now := navigation.ShouldHighlight(window.Get("scrollY").Float())
		if now == scrolled {
			return
		}
		scrolled = now
		nav.Call("setAttribute", "data-scrolled", boolAttr(now))
	}
	webcanvas.Listen(window, "scroll", func(js.Value) { update() })
	update()
}

func viewport(window js.Value) (int, int) {
	w := int(math.Max(1, window.Get("innerWidth").Float()))
	h := int(math.Max(1, window.Get("innerHeight").Float()))
	return w, h
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
