package components

import (
	g "maragu.dev/gomponents"
)

// PageData carries the per-request state of the landing page.
type PageData struct {
	Config   PageConfig
	Scrolled bool
	Form     FormState
}

// LandingPage composes the sections in navbar order.
func LandingPage(data PageData) g.Node {
	return Layout(data.Config,
		Backdrop(),
		Navbar(data.Scrolled),
		Anchor("hero", Hero()),
		Anchor("problem", ProblemSection()),
		Anchor("about", About()),
		Anchor("features", Features()),
		Anchor("contact", ContactForm(data.Form)),
		PageFooter(),
	)
}
