package handlers

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/Thegreatvegan/Qura/internal/components"
	"github.com/Thegreatvegan/Qura/internal/contact"
	"github.com/Thegreatvegan/Qura/pkg/apperror"
	"github.com/Thegreatvegan/Qura/pkg/logger"
)

// maxContactBody caps request bodies well above the largest valid
// submission.
const maxContactBody = 64 << 10

// ContactHandler accepts contact submissions as JSON from the page script
// and as a plain form post when scripting is off.
type ContactHandler struct {
	svc   *contact.Service
	pages *PageHandler
	log   *slog.Logger
}

func NewContactHandler(svc *contact.Service, pages *PageHandler, log *slog.Logger) *ContactHandler {
	return &ContactHandler{
		svc:   svc,
		pages: pages,
		log:   log.With(logger.Scope("contact")),
	}
}

// SubmitJSON handles POST /api/contact.
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	if !h.svc.Allow(clientKey(r)) {
		h.writeResult(w, apperror.ErrTooManyRequests.HTTPStatus, contact.RateLimited())
		return
	}

	var sub contact.Submission
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	if err := dec.Decode(&sub); err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewBadRequest("Malformed request body").WithInternal(err))
		return
	}

	res := h.svc.Submit(r.Context(), sub)
	h.writeResult(w, statusFor(res), res)
}

// SubmitForm handles POST /contact and re-renders the page with the
// outcome in place of the form.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewBadRequest("Malformed form body").WithInternal(err))
		return
	}

	sub := contact.Submission{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Company: r.PostForm.Get("company"),
		Message: r.PostForm.Get("message"),
	}

	var res contact.Result
	status := apperror.ErrTooManyRequests.HTTPStatus
	if h.svc.Allow(clientKey(r)) {
		res = h.svc.Submit(r.Context(), sub)
		status = statusFor(res)
	} else {
		res = contact.RateLimited()
	}

	h.pages.render(w, status, components.PageData{Form: components.NewFormState(sub, res)})
}

// resultError classifies an unsuccessful result; nil means success. The
// response body stays the Result itself.
func resultError(res contact.Result) *apperror.Error {
	switch {
	case res.Success:
		return nil
	case len(res.Errors) > 0:
		return apperror.ErrValidation
	default:
		return apperror.ErrUpstream
	}
}

func statusFor(res contact.Result) int {
	if appErr := resultError(res); appErr != nil {
		return appErr.HTTPStatus
	}
	return http.StatusOK
}

func (h *ContactHandler) writeResult(w http.ResponseWriter, status int, res contact.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.Debug("failed to write contact result",
			slog.Int("status", status),
			logger.Error(err))
	}
}

// clientKey identifies the submitter for rate limiting. RealIP has
// already rewritten RemoteAddr when a proxy header is present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
