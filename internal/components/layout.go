package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// Skips the wasm viewer, for the no-script and test renders
	NoViewer bool
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Qura - Quantum-Enhanced Drug Discovery"
	}

	if config.Description == "" {
		config.Description = "Accelerating breakthroughs through quantum-enhanced molecular modeling and simulation."
	}

	if config.OGImage == "" {
		config.OGImage = "/molecule.png?w=1200&h=630"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("bg-white text-gray-900 antialiased"),
				g.El("main",
					Class("min-h-screen bg-white relative"),
					g.Group(content),
				),

				g.If(!config.NoViewer, g.Group([]g.Node{
					Script(Src("/static/js/wasm_exec.js")),
					Script(Type("module"), Src("/static/js/viewer.js")),
				})),
			),
		),
	})
}
