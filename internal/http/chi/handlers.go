package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/hookdash/auth"
	"github.com/marcelsud/hookdash/endpoint"
	"github.com/marcelsud/hookdash/forwarding"
	"github.com/marcelsud/hookdash/webhook"
	"github.com/rs/zerolog"
)

// requestTimeout bounds every route except manual replay, which is bounded by the config's own timeout.
const requestTimeout = 30 * time.Second

// Receiver is the ingestion gateway.
type Receiver interface {
	Receive(ctx context.Context, endpointID string, r *http.Request) (endpoint.Response, error)
}

// PlanLimiter reports the endpoint allowance of a principal's plan.
type PlanLimiter interface {
	Limit(p auth.Principal) int
}

// Services groups what the router dispatches to.
type Services struct {
	Endpoints  endpoint.UseCase
	Requests   webhook.UseCase
	Forwarding forwarding.UseCase
	Gateway    Receiver
	Auth       auth.Validator
	Plans      PlanLimiter
	Metrics    http.Handler
	AppName    string
	Version    string
}

// NewLogger builds the service logger shared by the router and background workers.
func NewLogger(appName string, json bool) zerolog.Logger {
	return httplog.NewLogger(appName, httplog.Options{
		JSON: json,
	})
}

func Handlers(ctx context.Context, s Services, logger zerolog.Logger) *chi.Mux {
	timeout := middleware.Timeout(requestTimeout)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.With(timeout).Get("/health", getHealth(s.AppName, s.Version).ServeHTTP)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	// Public: any method, no authentication
	r.With(timeout).Handle("/hooks/{endpoint_id}", receiveWebhook(s.Gateway))

	r.Route("/v1", func(r chi.Router) {
		r.Use(authenticate(s.Auth))

		r.With(timeout).Get("/dashboard", getDashboard(s.Endpoints, s.Requests, s.Plans).ServeHTTP)

		r.Route("/endpoints", func(r chi.Router) {
			r.With(timeout).Get("/", getEndpoints(s.Endpoints).ServeHTTP)
			r.With(timeout).Post("/", postEndpoint(s.Endpoints).ServeHTTP)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(endpointCtx(s.Endpoints))

				r.Post("/requests/{request_id}/replay", replayRequest(s.Requests, s.Forwarding).ServeHTTP)

				r.Group(func(r chi.Router) {
					r.Use(timeout)
					r.Get("/", getEndpoint().ServeHTTP)
					r.Patch("/", patchEndpoint(s.Endpoints).ServeHTTP)
					r.Delete("/", deleteEndpoint(s.Endpoints).ServeHTTP)

					r.Get("/requests", getRequests(s.Requests).ServeHTTP)
					r.Get("/requests/{request_id}", getRequest(s.Requests).ServeHTTP)

					r.Get("/forwarding", getForwarding(s.Forwarding).ServeHTTP)
					r.Put("/forwarding", putForwarding(s.Forwarding).ServeHTTP)
					r.Delete("/forwarding", deleteForwarding(s.Forwarding).ServeHTTP)
					r.Get("/forwarding/logs", getForwardingLogs(s.Forwarding).ServeHTTP)
				})
			})
		})
	})

	return r
}

func getHealth(appName, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"app":     appName,
			"version": version,
		})
	})
}
