package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/Thegreatvegan/Qura/internal/components"
	"github.com/Thegreatvegan/Qura/pkg/logger"
)

// PageHandler renders the landing page.
type PageHandler struct {
	log *slog.Logger
}

func NewPageHandler(log *slog.Logger) *PageHandler {
	return &PageHandler{log: log.With(logger.Scope("pages"))}
}

func (h *PageHandler) LandingPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, components.PageData{})
}

// render buffers the page so a failed render can still answer 500.
func (h *PageHandler) render(w http.ResponseWriter, status int, data components.PageData) {
	var buf bytes.Buffer
	if err := components.LandingPage(data).Render(&buf); err != nil {
		h.log.Error("render landing page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
