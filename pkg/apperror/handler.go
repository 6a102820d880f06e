package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Thegreatvegan/Qura/pkg/logger"
)

// WriteJSON renders err as {"error":{...}} with the matching status code.
// Server-side failures are logged; client errors are not.
func WriteJSON(w http.ResponseWriter, log *slog.Logger, err error) {
	status, body := ToHTTPError(err)

	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			slog.Int("status", status),
			logger.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NotFoundHandler answers unknown routes in the common error format.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, nil, ErrNotFound)
}
