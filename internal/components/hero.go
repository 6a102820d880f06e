package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Thegreatvegan/Qura/internal/backdrop"
	"github.com/Thegreatvegan/Qura/internal/navigation"
)

func Hero() g.Node {
	return g.El("section",
		Class("relative h-screen flex items-center justify-center overflow-hidden"),

		Div(
			Class("absolute inset-0 z-0"),
			g.Attr("aria-hidden", "true"),
			Div(Class("absolute top-20 left-20 w-64 h-64 rounded-full bg-blue-100 opacity-20 blur-3xl")),
			Div(Class("absolute bottom-20 right-20 w-80 h-80 rounded-full bg-purple-100 opacity-20 blur-3xl")),

			decorationCanvas(navigation.HelixCanvasID, "absolute left-10 top-1/4", backdrop.NewHelix()),
			decorationCanvas(navigation.CircuitCanvasID, "absolute right-10 top-1/3", backdrop.NewCircuit()),
		),

		Div(
			Class("container mx-auto px-4 z-10 pt-16"),
			Div(
				Class("max-w-3xl mx-auto text-center reveal"),
				H1(
					Class("text-4xl md:text-6xl font-bold text-gray-900 mb-6"),
					g.Text("Revolutionizing Drug Discovery with Quantum Computing"),
				),
				P(
					Class("text-xl md:text-2xl text-gray-600 mb-10"),
					g.Text("Accelerating breakthroughs through quantum-enhanced molecular modeling and simulation."),
				),
				A(
					Href("#contact"),
					Class("inline-block bg-gradient-to-r from-blue-600 to-purple-600 text-white text-lg px-8 py-4 rounded-md hover:shadow-lg transition-all hover:scale-105"),
					g.Text("Join the Revolution"),
				),
			),
		),

		Div(Class("absolute bottom-0 left-0 right-0 h-32 bg-gradient-to-t from-white to-transparent")),
	)
}

// decorationCanvas sizes the canvas to the field so the client draws 1:1.
func decorationCanvas(id, position string, f *backdrop.Field) g.Node {
	return g.El("canvas",
		ID(id),
		Class(position),
		g.Attr("width", fmt.Sprintf("%.0f", f.Width)),
		g.Attr("height", fmt.Sprintf("%.0f", f.Height)),
		g.Attr("style", fmt.Sprintf("width:%.0fpx;height:%.0fpx;opacity:%.2f", f.Width, f.Height, f.Opacity)),
	)
}
