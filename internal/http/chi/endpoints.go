package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/marcelsud/hookdash/endpoint"
)

/* HTTP layer DTOs for endpoints
 * Separate from domain entities to avoid leaking internal structure
 */

type endpointRequest struct {
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	ResponseCode        lenientInt `json:"response_code"`
	ResponseBody        *string    `json:"response_body"`
	ResponseContentType *string    `json:"response_content_type"`
}

type endpointPatchRequest struct {
	Name                *string    `json:"name"`
	Description         *string    `json:"description"`
	IsActive            *bool      `json:"is_active"`
	ResponseCode        lenientInt `json:"response_code"`
	ResponseBody        *string    `json:"response_body"`
	ResponseContentType *string    `json:"response_content_type"`
}

type endpointResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	IsActive            bool      `json:"is_active"`
	URL                 string    `json:"url"`
	ResponseCode        int       `json:"response_code"`
	ResponseBody        string    `json:"response_body"`
	ResponseContentType string    `json:"response_content_type"`
	RequestCount        int64     `json:"request_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toEndpointResponse(e endpoint.Endpoint) endpointResponse {
	return endpointResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Description:         e.Description,
		IsActive:            e.Active,
		URL:                 "/hooks/" + e.ID,
		ResponseCode:        e.Response.StatusCode,
		ResponseBody:        e.Response.Body,
		ResponseContentType: e.Response.ContentType,
		RequestCount:        e.RequestCount,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func getEndpoints(endpoints endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := endpoints.List(r.Context(), principal(r).ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		result := make([]endpointResponse, 0, len(all))
		for _, e := range all {
			result = append(result, toEndpointResponse(e))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func postEndpoint(endpoints endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var er endpointRequest
		if err := json.NewDecoder(r.Body).Decode(&er); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		resp := endpoint.DefaultResponse()
		resp.StatusCode = er.ResponseCode.Or(endpoint.DefaultStatusCode)
		if er.ResponseBody != nil {
			resp.Body = *er.ResponseBody
		}
		if er.ResponseContentType != nil {
			resp.ContentType = *er.ResponseContentType
		}

		e, err := endpoints.Create(r.Context(), principal(r), endpoint.Input{
			Name:        er.Name,
			Description: er.Description,
			Response:    resp,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEndpointResponse(e))
	})
}

func getEndpoint() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toEndpointResponse(currentEndpoint(r)))
	})
}

func patchEndpoint(endpoints endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pr endpointPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&pr); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		// An unparseable response_code keeps the current value.
		e, err := endpoints.Update(r.Context(), currentEndpoint(r), endpoint.Patch{
			Name:        pr.Name,
			Description: pr.Description,
			Active:      pr.IsActive,
			StatusCode:  pr.ResponseCode.Ptr(),
			Body:        pr.ResponseBody,
			ContentType: pr.ResponseContentType,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toEndpointResponse(e))
	})
}

func deleteEndpoint(endpoints endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := endpoints.Delete(r.Context(), currentEndpoint(r)); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
