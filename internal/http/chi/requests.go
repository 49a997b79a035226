package chi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/hookdash/forwarding"
	"github.com/marcelsud/hookdash/internal/paging"
	"github.com/marcelsud/hookdash/webhook"
)

type requestResponse struct {
	ID          string            `json:"id"`
	EndpointID  string            `json:"endpoint_id"`
	Method      string            `json:"method"`
	Headers     map[string]string `json:"headers"`
	Body        string            `json:"body"`
	QueryParams map[string]string `json:"query_params"`
	ContentType string            `json:"content_type"`
	SourceIP    string            `json:"source_ip"`
	BodySize    int64             `json:"body_size"`
	CreatedAt   time.Time         `json:"created_at"`
}

type requestPageResponse struct {
	Requests []requestResponse `json:"requests"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Pages    int               `json:"pages"`
}

func toRequestResponse(req webhook.Request) requestResponse {
	return requestResponse{
		ID:          req.ID,
		EndpointID:  req.EndpointID,
		Method:      req.Method,
		Headers:     req.Headers,
		Body:        req.Body,
		QueryParams: req.QueryParams,
		ContentType: req.ContentType,
		SourceIP:    req.SourceIP,
		BodySize:    req.BodySize,
		CreatedAt:   req.CreatedAt,
	}
}

func getRequests(requests webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := currentEndpoint(r)
		q := r.URL.Query()
		page := paging.Parse(q.Get("page"), webhook.PageSize)
		filter := webhook.Filter{Method: q.Get("method"), Search: q.Get("search")}

		all, total, err := requests.List(r.Context(), e.ID, filter, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		result := make([]requestResponse, 0, len(all))
		for _, req := range all {
			result = append(result, toRequestResponse(req))
		}
		writeJSON(w, http.StatusOK, requestPageResponse{
			Requests: result,
			Total:    total,
			Page:     page.Number,
			PageSize: page.Size,
			Pages:    page.Pages(total),
		})
	})
}

func getRequest(requests webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := requests.Get(r.Context(), chi.URLParam(r, "request_id"), currentEndpoint(r).ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponse(req))
	})
}

// replayRequest runs a single attempt synchronously and returns its log.
func replayRequest(requests webhook.UseCase, fwd forwarding.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := currentEndpoint(r)
		req, err := requests.Get(r.Context(), chi.URLParam(r, "request_id"), e.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		c, err := fwd.Get(r.Context(), e.ID)
		if errors.Is(err, forwarding.ErrNotFound) {
			writeError(w, r, forwarding.ErrInactive)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}
		l, err := fwd.Replay(r.Context(), c, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toLogResponse(l))
	})
}
