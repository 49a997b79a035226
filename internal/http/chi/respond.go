package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/hookdash/endpoint"
	"github.com/marcelsud/hookdash/forwarding"
	"github.com/marcelsud/hookdash/webhook"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

/* writeError maps domain sentinels to status codes
 * Anything unrecognised is logged and hidden behind a 500
 */
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, endpoint.ErrNotFound),
		errors.Is(err, webhook.ErrNotFound),
		errors.Is(err, forwarding.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, endpoint.ErrInvalid):
		writeMessage(w, http.StatusUnprocessableEntity, reason(err, endpoint.ErrInvalid))
	case errors.Is(err, forwarding.ErrInvalid):
		writeMessage(w, http.StatusUnprocessableEntity, reason(err, forwarding.ErrInvalid))
	case errors.Is(err, endpoint.ErrQuotaExceeded):
		writeMessage(w, http.StatusForbidden, "Endpoint limit reached for your plan")
	case errors.Is(err, forwarding.ErrInactive):
		writeMessage(w, http.StatusConflict, "Forwarding not configured or inactive")
	default:
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Msg("request failed")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// reason strips the sentinel prefix so only the human readable part is returned.
func reason(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
