package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const ContactEmail = "contact@qura.tech"

const copyrightYear = 2025

func PageFooter() g.Node {
	return g.El("footer",
		Class("py-12 bg-gray-900 text-white"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("flex flex-col md:flex-row justify-between items-center"),
				Div(
					Class("mb-6 md:mb-0"),
					H2(Class("text-2xl font-bold"), g.Text("Qura")),
					P(Class("text-gray-400 mt-2"), g.Text("Quantum-Enhanced Drug Discovery")),
				),
				Div(
					Class("flex flex-col items-center md:items-end"),
					Div(
						Class("flex space-x-4 mb-4"),
						A(
							Href("https://instagram.com"),
							g.Attr("target", "_blank"),
							Rel("noopener noreferrer"),
							Class("hover:text-blue-400 transition-colors"),
							Icon("lucide--instagram w-6 h-6", ""),
							Span(Class("sr-only"), g.Text("Instagram")),
						),
					),
					A(
						Href("mailto:"+ContactEmail),
						Class("text-gray-400 hover:text-white transition-colors"),
						g.Text(ContactEmail),
					),
					P(Class("text-gray-500 mt-4"), g.Text(fmt.Sprintf("© %d Qura Technologies, Inc.", copyrightYear))),
				),
			),
		),
	)
}
