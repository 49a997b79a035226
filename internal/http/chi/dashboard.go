package chi

import (
	"net/http"

	"github.com/marcelsud/hookdash/endpoint"
	"github.com/marcelsud/hookdash/webhook"
)

type dashboardResponse struct {
	Plan          string `json:"plan"`
	EndpointCount int    `json:"endpoint_count"`
	EndpointLimit int    `json:"endpoint_limit"`
	TotalRequests int64  `json:"total_requests"`
	RequestsToday int64  `json:"requests_today"`
}

func getDashboard(endpoints endpoint.UseCase, requests webhook.UseCase, plans PlanLimiter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := principal(r)
		all, err := endpoints.List(r.Context(), p.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		summary, err := requests.Summary(r.Context(), p.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dashboardResponse{
			Plan:          p.Plan,
			EndpointCount: len(all),
			EndpointLimit: plans.Limit(p),
			TotalRequests: summary.Total,
			RequestsToday: summary.Today,
		})
	})
}
