//go:build !integration

package ingest

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marcelsud/hookdash/endpoint"
	"github.com/marcelsud/hookdash/forwarding"
	fwmocks "github.com/marcelsud/hookdash/forwarding/mocks"
	"github.com/marcelsud/hookdash/ingest/mocks"
	"github.com/marcelsud/hookdash/webhook"
	whmocks "github.com/marcelsud/hookdash/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayMocks struct {
	endpoints  *mocks.EndpointGetter
	requests   *mocks.RequestStore
	configs    *fwmocks.ConfigGetter
	dispatcher *mocks.Dispatcher
}

func newTestGateway(t *testing.T, maxBody int64) (*Gateway, gatewayMocks) {
	m := gatewayMocks{
		endpoints:  mocks.NewEndpointGetter(t),
		requests:   mocks.NewRequestStore(t),
		configs:    fwmocks.NewConfigGetter(t),
		dispatcher: mocks.NewDispatcher(t),
	}
	return NewGateway(m.endpoints, m.requests, m.configs, m.dispatcher, maxBody), m
}

func activeEndpoint() endpoint.Endpoint {
	return endpoint.Endpoint{
		ID:     "ep-1",
		Active: true,
		Response: endpoint.Response{
			StatusCode:  202,
			Body:        `{"received": true}`,
			ContentType: "application/json",
		},
	}
}

func TestGateway_Receive(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and dispatches", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		recorder := mocks.NewReceiveRecorder(t)
		g.Recorder = recorder

		r := httptest.NewRequest("POST", "/hooks/ep-1?a=1&a=2&b=x", strings.NewReader(`{"id":1}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Add("X-Multi", "one")
		r.Header.Add("X-Multi", "two")
		r.RemoteAddr = "203.0.113.9:5555"

		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		m.requests.On("Store", ctx, "ep-1", mock.MatchedBy(func(in webhook.Incoming) bool {
			return in.Body == `{"id":1}` &&
				in.Headers["x-multi"] == "one, two" &&
				in.Headers["content-type"] == "application/json" &&
				in.Headers["host"] == "example.com" &&
				in.QueryParams["a"] == "2" &&
				in.QueryParams["b"] == "x" &&
				in.ContentType == "application/json" &&
				in.SourceIP == "203.0.113.9"
		})).Return(webhook.Request{ID: "req-1", EndpointID: "ep-1"}, nil)
		recorder.On("RecordReceived", ctx).Return()
		m.configs.On("Get", ctx, "ep-1").Return(forwarding.Config{ID: "fc-1", Active: true}, nil)
		m.dispatcher.On("Dispatch", "ep-1", "req-1").Return()

		resp, err := g.Receive(ctx, "ep-1", r)

		require.NoError(t, err)
		assert.Equal(t, 202, resp.StatusCode)
		assert.Equal(t, `{"received": true}`, resp.Body)
		assert.Equal(t, "application/json", resp.ContentType)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		m.endpoints.On("GetByID", ctx, "nope").Return(endpoint.Endpoint{}, endpoint.ErrNotFound)

		_, err := g.Receive(ctx, "nope", httptest.NewRequest("POST", "/hooks/nope", nil))

		assert.ErrorIs(t, err, ErrEndpointNotFound)
	})

	t.Run("inactive endpoint stores nothing", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		e := activeEndpoint()
		e.Active = false
		m.endpoints.On("GetByID", ctx, "ep-1").Return(e, nil)

		_, err := g.Receive(ctx, "ep-1", httptest.NewRequest("POST", "/hooks/ep-1", strings.NewReader("x")))

		assert.ErrorIs(t, err, ErrEndpointInactive)
		m.requests.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("declared length over limit", func(t *testing.T) {
		g, m := newTestGateway(t, 4)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)

		_, err := g.Receive(ctx, "ep-1", httptest.NewRequest("POST", "/hooks/ep-1", strings.NewReader("12345")))

		assert.ErrorIs(t, err, ErrPayloadTooLarge)
		var tooLarge *TooLargeError
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, int64(4), tooLarge.Limit)
	})

	t.Run("streamed body over limit", func(t *testing.T) {
		g, m := newTestGateway(t, 4)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		r := httptest.NewRequest("POST", "/hooks/ep-1", strings.NewReader("123456789"))
		r.ContentLength = -1

		_, err := g.Receive(ctx, "ep-1", r)

		assert.ErrorIs(t, err, ErrPayloadTooLarge)
	})

	t.Run("body exactly at limit", func(t *testing.T) {
		g, m := newTestGateway(t, 4)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		m.requests.On("Store", ctx, "ep-1", mock.MatchedBy(func(in webhook.Incoming) bool {
			return in.Body == "1234"
		})).Return(webhook.Request{ID: "req-1", EndpointID: "ep-1"}, nil)
		m.configs.On("Get", ctx, "ep-1").Return(forwarding.Config{}, forwarding.ErrNotFound)

		_, err := g.Receive(ctx, "ep-1", httptest.NewRequest("POST", "/hooks/ep-1", strings.NewReader("1234")))

		require.NoError(t, err)
		m.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("invalid utf-8 is replaced", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		m.requests.On("Store", ctx, "ep-1", mock.MatchedBy(func(in webhook.Incoming) bool {
			return in.Body == "a\uFFFDb"
		})).Return(webhook.Request{ID: "req-1", EndpointID: "ep-1"}, nil)
		m.configs.On("Get", ctx, "ep-1").Return(forwarding.Config{}, forwarding.ErrNotFound)

		_, err := g.Receive(ctx, "ep-1", httptest.NewRequest("POST", "/hooks/ep-1", strings.NewReader("a\xffb")))

		require.NoError(t, err)
	})

	t.Run("inactive forwarding is not dispatched", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		m.requests.On("Store", ctx, "ep-1", mock.Anything).Return(webhook.Request{ID: "req-1", EndpointID: "ep-1"}, nil)
		m.configs.On("Get", ctx, "ep-1").Return(forwarding.Config{ID: "fc-1", Active: false}, nil)

		resp, err := g.Receive(ctx, "ep-1", httptest.NewRequest("GET", "/hooks/ep-1", nil))

		require.NoError(t, err)
		assert.Equal(t, 202, resp.StatusCode)
		m.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("NUL and truncated sequences are stored as replacement characters", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		m.requests.On("Store", ctx, "ep-1", mock.MatchedBy(func(in webhook.Incoming) bool {
			return in.Body == "\uFFFD\uFFFDbin\uFFFD" &&
				in.QueryParams["q"] == "a\uFFFDb" &&
				in.Method == "X-VERY-LONG-CUSTOM-HTTP-METHOD-NAME"
		})).Return(webhook.Request{ID: "req-1", EndpointID: "ep-1"}, nil)
		m.configs.On("Get", ctx, "ep-1").Return(forwarding.Config{}, forwarding.ErrNotFound)
		r := httptest.NewRequest("X-VERY-LONG-CUSTOM-HTTP-METHOD-NAME", "/hooks/ep-1?q=a%00b", strings.NewReader("\x00\x00bin\xe2\x82"))

		resp, err := g.Receive(ctx, "ep-1", r)

		require.NoError(t, err)
		assert.Equal(t, 202, resp.StatusCode)
	})

	t.Run("forwarding lookup failure still answers", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		m.requests.On("Store", ctx, "ep-1", mock.Anything).Return(webhook.Request{ID: "req-1", EndpointID: "ep-1"}, nil)
		m.configs.On("Get", ctx, "ep-1").Return(forwarding.Config{}, errors.New("db down"))

		resp, err := g.Receive(ctx, "ep-1", httptest.NewRequest("POST", "/hooks/ep-1", strings.NewReader("x")))

		require.NoError(t, err)
		assert.Equal(t, activeEndpoint().Response, resp)
		m.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("counter failure after insert still answers", func(t *testing.T) {
		endpoints := mocks.NewEndpointGetter(t)
		repo := whmocks.NewRepository(t)
		counter := whmocks.NewCounter(t)
		configs := fwmocks.NewConfigGetter(t)
		g := NewGateway(endpoints, webhook.NewService(repo, counter), configs, mocks.NewDispatcher(t), 1024)

		endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		repo.On("Insert", ctx, mock.Anything).Return(nil)
		counter.On("IncrementRequestCount", ctx, "ep-1").Return(errors.New("redis: connection refused"))
		configs.On("Get", ctx, "ep-1").Return(forwarding.Config{}, forwarding.ErrNotFound)

		resp, err := g.Receive(ctx, "ep-1", httptest.NewRequest("POST", "/hooks/ep-1", strings.NewReader("x")))

		require.NoError(t, err)
		assert.Equal(t, 202, resp.StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		g, m := newTestGateway(t, 1024)
		m.endpoints.On("GetByID", ctx, "ep-1").Return(activeEndpoint(), nil)
		m.requests.On("Store", ctx, "ep-1", mock.Anything).Return(webhook.Request{}, errors.New("db down"))

		_, err := g.Receive(ctx, "ep-1", httptest.NewRequest("POST", "/hooks/ep-1", nil))

		assert.ErrorContains(t, err, "storing webhook")
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid", "héllo", "héllo"},
		{"lone invalid byte", "a\xffb", "a\uFFFDb"},
		{"two invalid bytes", "\xff\xfe", "\uFFFD\uFFFD"},
		{"truncated three byte sequence", "\xe2\x82", "\uFFFD"},
		{"truncated sequence before ascii", "\xe2\x82z", "\uFFFDz"},
		{"truncated four byte sequence", "\xf0\x9f\x98", "\uFFFD"},
		{"surrogate half", "\xed\xa0\x80", "\uFFFD\uFFFD\uFFFD"},
		{"overlong lead", "\xc0\xaf", "\uFFFD\uFFFD"},
		{"stray continuation", "\x80\x80", "\uFFFD\uFFFD"},
		{"NUL", "a\x00b", "a\uFFFDb"},
		{"literal replacement character", "\uFFFD", "\uFFFD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode([]byte(tt.in)))
		})
	}
}

func TestSourceIP(t *testing.T) {
	assert.Equal(t, "10.0.0.1", sourceIP("10.0.0.1:80"))
	assert.Equal(t, "::1", sourceIP("[::1]:80"))
	assert.Equal(t, "10.0.0.1", sourceIP("10.0.0.1"))
	assert.Equal(t, "unknown", sourceIP(""))
}
