package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("handlers",
	fx.Provide(
		NewPageHandler,
		NewContactHandler,
		NewMoleculeHandler,
		NewHealthHandler,
	),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes mounts every page, form and asset endpoint.
func RegisterRoutes(r chi.Router, p *PageHandler, c *ContactHandler, m *MoleculeHandler, h *HealthHandler) {
	r.Get("/", p.LandingPage)

	r.Post("/contact", c.SubmitForm)
	r.Post("/api/contact", c.SubmitJSON)

	r.Get("/molecule.png", m.PNG)
	r.Get("/molecule.gif", m.GIF)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
}
