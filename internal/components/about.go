package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Thegreatvegan/Qura/internal/navigation"
)

// Poster image dimensions, matching the viewer box.
const (
	PosterWidth  = 560
	PosterHeight = 400
)

func About() g.Node {
	return g.El("section",
		Class("py-20 bg-gray-50 relative"),

		floatingRings(),

		Div(
			Class("container mx-auto px-4 relative z-10"),

			SectionHeading("About Our Technology", "bg-blue-600"),

			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),
				Div(
					Class("reveal"),
					H3(Class("text-2xl font-bold text-gray-900 mb-4"), g.Text("Quantum-Enhanced Drug Discovery")),
					P(
						Class("text-gray-600 mb-6"),
						g.Text("Qura's quantum computing platform accelerates the drug discovery process by simulating complex molecular interactions that traditional computing cannot handle efficiently. Our hybrid quantum-classical approach enables us to explore vast chemical spaces and identify promising drug candidates in a fraction of the time required by conventional methods."),
					),
					P(
						Class("text-gray-600"),
						g.Text("By leveraging quantum algorithms for molecular modeling and simulation, we achieve unprecedented accuracy in predicting drug-target interactions, pharmacokinetics, and clinical outcomes. Our end-to-end platform supports the entire drug development pipeline, from initial discovery through regulatory submission, all enhanced by quantum computing power."),
					),
				),

				MoleculeViewer(),
			),
		),
	)
}

// MoleculeViewer is the interactive canvas box. Without JavaScript the
// server-rendered poster stands in for it.
func MoleculeViewer() g.Node {
	poster := fmt.Sprintf("/molecule.png?w=%d&h=%d", PosterWidth, PosterHeight)

	return Div(
		ID(navigation.MoleculeViewerID),
		Class("relative h-[400px] rounded-lg overflow-hidden shadow-xl reveal"),

		g.El("canvas",
			ID(navigation.MoleculeCanvasID),
			Class("w-full h-full bg-gradient-to-br from-gray-50 to-white cursor-grab active:cursor-grabbing touch-none"),
			g.Attr("role", "img"),
			g.Attr("aria-label", "Interactive 3D molecule"),
			g.Attr("data-poster", poster),
		),

		g.El("noscript",
			Img(
				Src(poster),
				g.Attr("alt", "Rendered 3D molecule"),
				Class("absolute inset-0 w-full h-full object-cover"),
			),
		),

		Div(
			Class("absolute bottom-4 left-4 bg-white/80 backdrop-blur-sm px-3 py-2 rounded-md shadow-sm pointer-events-none"),
			P(Class("text-sm font-medium text-gray-900"), g.Text("Interactive 3D Molecule")),
			P(Class("text-xs text-gray-500"), g.Text("Drag to rotate")),
		),

		Button(
			ID(navigation.MoleculeToggleID),
			Type("button"),
			g.Attr("data-rotating", "true"),
			g.Attr("aria-label", "Pause rotation"),
			Class("group absolute top-4 right-4 bg-white/80 backdrop-blur-sm p-2 rounded-full shadow-sm hover:bg-white transition-colors"),
			Span(Class("group-data-[rotating=false]:hidden"), Icon("lucide--pause w-4 h-4 text-gray-700", "")),
			Span(Class("hidden group-data-[rotating=false]:inline"), Icon("lucide--play w-4 h-4 text-gray-700", "")),
		),
	)
}

func floatingRings() g.Node {
	rings := make([]g.Node, 0, 13)
	for i := 0; i < 5; i++ {
		size := 20 + i*15
		rings = append(rings, Div(
			Class("absolute rounded-full border-2 border-blue-200 animate-[spin_linear_infinite]"),
			g.Attr("style", fmt.Sprintf("width:%dpx;height:%dpx;left:%d%%;top:%d%%;animation-duration:%ds",
				size, size, 10+i*20, 20+i*10, 20+i*5)),
		))
	}
	for i := 0; i < 8; i++ {
		rings = append(rings, Div(
			Class("absolute w-1.5 h-1.5 rounded-full bg-purple-400 animate-pulse"),
			g.Attr("style", fmt.Sprintf("left:%d%%;top:%d%%;animation-duration:%ds",
				60+(i%4)*8, 10+(i/4)*70, 2+i%3)),
		))
	}

	return Div(
		Class("absolute inset-0 overflow-hidden pointer-events-none"),
		g.Attr("aria-hidden", "true"),
		g.Group(rings),
	)
}
