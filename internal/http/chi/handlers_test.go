//go:build !integration

package chi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/hookdash/auth"
	"github.com/marcelsud/hookdash/endpoint"
	endpointmocks "github.com/marcelsud/hookdash/endpoint/mocks"
	fwmocks "github.com/marcelsud/hookdash/forwarding/mocks"
	"github.com/marcelsud/hookdash/internal/http/chi/mocks"
	"github.com/marcelsud/hookdash/webhook"
	webhookmocks "github.com/marcelsud/hookdash/webhook/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var owner = auth.Principal{ID: "user-1", Plan: auth.PlanPro}

type testServer struct {
	router     *chi.Mux
	endpoints  *endpointmocks.UseCase
	requests   *webhookmocks.UseCase
	forwarding *fwmocks.UseCase
	gateway    *mocks.Receiver
	plans      *mocks.PlanLimiter
	token      string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	token, err := auth.IssueToken(testSecret, owner, time.Hour)
	require.NoError(t, err)

	ts := &testServer{
		endpoints:  endpointmocks.NewUseCase(t),
		requests:   webhookmocks.NewUseCase(t),
		forwarding: fwmocks.NewUseCase(t),
		gateway:    mocks.NewReceiver(t),
		plans:      mocks.NewPlanLimiter(t),
		token:      token,
	}
	ts.router = Handlers(context.Background(), Services{
		Endpoints:  ts.endpoints,
		Requests:   ts.requests,
		Forwarding: ts.forwarding,
		Gateway:    ts.gateway,
		Auth:       auth.NewJWTValidator(testSecret),
		Plans:      ts.plans,
		AppName:    "HookDash",
		Version:    "test",
	}, zerolog.Nop())
	return ts
}

// do sends an authenticated request unless the path is public.
func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if strings.HasPrefix(path, "/v1") {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// ownEndpoint makes the endpoint middleware resolve ep-1 for the test owner.
func (ts *testServer) ownEndpoint() endpoint.Endpoint {
	e := endpoint.Endpoint{
		ID:       "ep-1",
		OwnerID:  owner.ID,
		Name:     "Stripe",
		Active:   true,
		Response: endpoint.DefaultResponse(),
	}
	ts.endpoints.On("Get", mock.Anything, "ep-1", owner.ID).Return(e, nil)
	return e
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[map[string]string](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "HookDash", body["app"])
	assert.Equal(t, "test", body["version"])
}

func TestAuthentication(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		ts := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		w := httptest.NewRecorder()

		ts.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authenticated", decodeJSON[errorResponse](t, w).Error)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		ts := newTestServer(t)
		forged, err := auth.IssueToken("other", owner, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()

		ts.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cookie", func(t *testing.T) {
		ts := newTestServer(t)
		ts.endpoints.On("List", mock.Anything, owner.ID).Return([]endpoint.Endpoint{}, nil)
		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: ts.token})
		w := httptest.NewRecorder()

		ts.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)
	ts.endpoints.On("List", mock.Anything, owner.ID).Return([]endpoint.Endpoint{{ID: "a"}, {ID: "b"}}, nil)
	ts.requests.On("Summary", mock.Anything, owner.ID).Return(webhook.Summary{Total: 40, Today: 3}, nil)
	ts.plans.On("Limit", owner).Return(25)

	w := ts.do(t, http.MethodGet, "/v1/dashboard", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[dashboardResponse](t, w)
	assert.Equal(t, dashboardResponse{
		Plan:          "pro",
		EndpointCount: 2,
		EndpointLimit: 25,
		TotalRequests: 40,
		RequestsToday: 3,
	}, body)
}
