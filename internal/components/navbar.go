package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Thegreatvegan/Qura/internal/navigation"
)

// Navbar renders the fixed top bar. The scrolled style is keyed off the
// data-scrolled attribute so the client can flip it without re-rendering.
func Navbar(scrolled bool) g.Node {
	state := "false"
	if scrolled {
		state = "true"
	}

	return g.El("nav",
		ID(navigation.NavbarID),
		g.Attr("data-scrolled", state),
		Class("group fixed top-0 left-0 right-0 z-50 transition-all duration-300 bg-transparent data-[scrolled=true]:bg-white/90 data-[scrolled=true]:backdrop-blur-md data-[scrolled=true]:shadow-md"),

		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("flex items-center justify-between h-16 md:h-20"),

				Logo(),

				Div(
					Class("hidden md:flex space-x-8"),
					g.Group(g.Map(navigation.Sections, func(s navigation.Section) g.Node {
						return A(
							Href(s.Href()),
							Class("text-gray-700 hover:text-blue-600 transition-colors font-medium"),
							g.Text(s.Name),
						)
					})),
				),

				A(
					Href(navigation.Sections[len(navigation.Sections)-1].Href()),
					Class("bg-gradient-to-r from-blue-600 to-purple-600 text-white px-4 py-2 rounded-md hidden md:block transition-transform hover:scale-105"),
					g.Text("Get Started"),
				),

				Div(
					Class("md:hidden"),
					Input(ID("nav-drawer"), Type("checkbox"), Class("peer hidden")),
					Label(
						g.Attr("for", "nav-drawer"),
						g.Attr("aria-label", "Open menu"),
						Class("text-gray-700 cursor-pointer"),
						Icon("lucide--menu size-6", ""),
					),
					Ul(
						Class("hidden peer-checked:block absolute right-4 top-16 bg-white rounded-md shadow-md py-2 w-48"),
						g.Group(g.Map(navigation.Sections, func(s navigation.Section) g.Node {
							return Li(
								A(
									Href(s.Href()),
									Class("block px-4 py-2 text-gray-700 hover:text-blue-600"),
									g.Text(s.Name),
								),
							)
						})),
					),
				),
			),
		),
	)
}
