package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Thegreatvegan/Qura/internal/navigation"
)

// Backdrop is the full-page particle layer drawn behind every section.
func Backdrop() g.Node {
	return Div(
		Class("fixed inset-0 -z-10 pointer-events-none overflow-hidden"),
		g.Attr("aria-hidden", "true"),
		Div(Class("absolute inset-0 bg-gradient-to-b from-blue-50/40 via-white to-purple-50/40")),
		g.El("canvas",
			ID(navigation.BackdropCanvasID),
			Class("absolute inset-0 w-full h-full"),
		),
	)
}
