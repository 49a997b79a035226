package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/marcelsud/hookdash/forwarding"
	"github.com/marcelsud/hookdash/internal/paging"
)

type forwardingRequest struct {
	TargetURL      string     `json:"target_url"`
	IsActive       *bool      `json:"is_active"`
	MaxRetries     lenientInt `json:"max_retries"`
	TimeoutSeconds lenientInt `json:"timeout_seconds"`
}

type forwardingConfigResponse struct {
	ID             string    `json:"id"`
	EndpointID     string    `json:"endpoint_id"`
	TargetURL      string    `json:"target_url"`
	IsActive       bool      `json:"is_active"`
	MaxRetries     int       `json:"max_retries"`
	TimeoutSeconds int       `json:"timeout_seconds"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type statsResponse struct {
	Total         int64   `json:"total"`
	Successes     int64   `json:"successes"`
	Failures      int64   `json:"failures"`
	SuccessRate   float64 `json:"success_rate"`
	AvgResponseMs int64   `json:"avg_response_ms"`
}

type forwardingResponse struct {
	Config forwardingConfigResponse `json:"config"`
	Stats  statsResponse            `json:"stats"`
}

type logResponse struct {
	ID             string    `json:"id"`
	ConfigID       string    `json:"forwarding_config_id"`
	RequestID      string    `json:"webhook_request_id"`
	StatusCode     *int      `json:"status_code"`
	Success        bool      `json:"success"`
	ErrorMessage   *string   `json:"error_message"`
	AttemptNumber  int       `json:"attempt_number"`
	ResponseTimeMs *int64    `json:"response_time_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

type logPageResponse struct {
	Logs     []logResponse `json:"logs"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Pages    int           `json:"pages"`
}

func toConfigResponse(c forwarding.Config) forwardingConfigResponse {
	return forwardingConfigResponse{
		ID:             c.ID,
		EndpointID:     c.EndpointID,
		TargetURL:      c.TargetURL,
		IsActive:       c.Active,
		MaxRetries:     c.MaxRetries,
		TimeoutSeconds: c.TimeoutSeconds,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toLogResponse(l forwarding.Log) logResponse {
	resp := logResponse{
		ID:             l.ID,
		ConfigID:       l.ConfigID,
		RequestID:      l.RequestID,
		StatusCode:     l.StatusCode,
		Success:        l.Success,
		AttemptNumber:  l.Attempt,
		ResponseTimeMs: l.ResponseTimeMs,
		CreatedAt:      l.CreatedAt,
	}
	if l.ErrorMessage != "" {
		msg := l.ErrorMessage
		resp.ErrorMessage = &msg
	}
	return resp
}

func getForwarding(fwd forwarding.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := fwd.Get(r.Context(), currentEndpoint(r).ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		s, err := fwd.Stats(r.Context(), c.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, forwardingResponse{
			Config: toConfigResponse(c),
			Stats: statsResponse{
				Total:         s.Total,
				Successes:     s.Successes,
				Failures:      s.Failures,
				SuccessRate:   s.SuccessRate,
				AvgResponseMs: s.AvgResponseMs,
			},
		})
	})
}

func putForwarding(fwd forwarding.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fr forwardingRequest
		if err := json.NewDecoder(r.Body).Decode(&fr); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		s := forwarding.DefaultSettings()
		s.TargetURL = fr.TargetURL
		if fr.IsActive != nil {
			s.Active = *fr.IsActive
		}
		s.MaxRetries = fr.MaxRetries.Or(forwarding.DefaultRetries)
		s.TimeoutSeconds = fr.TimeoutSeconds.Or(forwarding.DefaultTimeout)

		c, err := fwd.Save(r.Context(), currentEndpoint(r).ID, s)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toConfigResponse(c))
	})
}

func deleteForwarding(fwd forwarding.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := fwd.Get(r.Context(), currentEndpoint(r).ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := fwd.Delete(r.Context(), c); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func getForwardingLogs(fwd forwarding.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := fwd.Get(r.Context(), currentEndpoint(r).ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		page := paging.Parse(r.URL.Query().Get("page"), forwarding.LogPageSize)
		logs, total, err := fwd.ListLogs(r.Context(), c.ID, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		result := make([]logResponse, 0, len(logs))
		for _, l := range logs {
			result = append(result, toLogResponse(l))
		}
		writeJSON(w, http.StatusOK, logPageResponse{
			Logs:     result,
			Total:    total,
			Page:     page.Number,
			PageSize: page.Size,
			Pages:    page.Pages(total),
		})
	})
}
