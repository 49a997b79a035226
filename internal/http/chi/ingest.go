package chi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/hookdash/ingest"
)

// receiveWebhook writes the endpoint's canned response byte-for-byte.
func receiveWebhook(gateway Receiver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := gateway.Receive(r.Context(), chi.URLParam(r, "endpoint_id"), r)
		switch {
		case errors.Is(err, ingest.ErrEndpointNotFound):
			writeMessage(w, http.StatusNotFound, "Endpoint not found")
			return
		case errors.Is(err, ingest.ErrEndpointInactive):
			writeMessage(w, http.StatusGone, "Endpoint is inactive")
			return
		case errors.Is(err, ingest.ErrPayloadTooLarge):
			writeMessage(w, http.StatusRequestEntityTooLarge, tooLargeMessage(err))
			return
		case err != nil:
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", resp.ContentType)
		w.WriteHeader(resp.StatusCode)
		w.Write([]byte(resp.Body))
	})
}

func tooLargeMessage(err error) string {
	var tooLarge *ingest.TooLargeError
	if !errors.As(err, &tooLarge) {
		return "Request body too large"
	}
	return fmt.Sprintf("Request body too large (max %s)", formatSize(tooLarge.Limit))
}

// formatSize prints whole megabytes or kilobytes, bytes otherwise.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
