package chi

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/hookdash/auth"
	"github.com/marcelsud/hookdash/endpoint"
)

const accessTokenCookie = "access_token"

type endpointKey struct{}

// authenticate accepts a bearer token or the access_token cookie.
func authenticate(v auth.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := v.Validate(r.Context(), bearerToken(r))
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(accessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

/* endpointCtx loads the endpoint named in the path for the current principal
 * Endpoints of other owners answer 404 like missing ones
 */
func endpointCtx(endpoints endpoint.UseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := principal(r)
			e, err := endpoints.Get(r.Context(), chi.URLParam(r, "id"), p.ID)
			if err != nil {
				writeError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), endpointKey{}, e)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func principal(r *http.Request) auth.Principal {
	p, _ := auth.FromContext(r.Context())
	return p
}

func currentEndpoint(r *http.Request) endpoint.Endpoint {
	e, _ := r.Context().Value(endpointKey{}).(endpoint.Endpoint)
	return e
}
