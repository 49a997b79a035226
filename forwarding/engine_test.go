package forwarding_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/marcelsud/hookdash/forwarding"
	"github.com/marcelsud/hookdash/forwarding/mocks"
	"github.com/marcelsud/hookdash/webhook"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedLogs struct {
	mu   sync.Mutex
	logs []forwarding.Log
}

func (r *recordedLogs) all() []forwarding.Log {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]forwarding.Log(nil), r.logs...)
}

func newTestEngine(t *testing.T) (*forwarding.Engine, *recordedLogs, *[]time.Duration) {
	t.Helper()
	logs := mocks.NewLogWriter(t)
	rec := &recordedLogs{}
	logs.On("InsertLog", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.logs = append(rec.logs, args.Get(1).(forwarding.Log))
	}).Return(nil).Maybe()

	pauses := &[]time.Duration{}
	e := forwarding.NewEngine(logs, zerolog.Nop())
	e.Sleep = func(_ context.Context, d time.Duration) error {
		*pauses = append(*pauses, d)
		return nil
	}
	return e, rec, pauses
}

func testRequest() webhook.Request {
	return webhook.Request{
		ID:         "req-1",
		EndpointID: "ep-1",
		Method:     "PUT",
		Body:       `{"order": 42}`,
		Headers: map[string]string{
			"Host":              "hooks.example.com",
			"Content-Length":    "13",
			"Transfer-Encoding": "chunked",
			"Connection":        "keep-alive",
			"X-Custom":          "yes",
			"Content-Type":      "application/json",
		},
	}
}

func TestEngine_ForwardWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("success forwards method, body and headers", func(t *testing.T) {
		var got *http.Request
		var gotBody string
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			got, gotBody = r, string(b)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer target.Close()

		e, rec, _ := newTestEngine(t)
		c := forwarding.Config{ID: "cfg-1", TargetURL: target.URL, Active: true, MaxRetries: 3, TimeoutSeconds: 5}

		l, err := e.ForwardWebhook(ctx, c, testRequest(), 1)

		require.NoError(t, err)
		assert.True(t, l.Success)
		require.NotNil(t, l.StatusCode)
		assert.Equal(t, http.StatusAccepted, *l.StatusCode)
		assert.Empty(t, l.ErrorMessage)
		assert.Equal(t, 1, l.Attempt)
		assert.Equal(t, "cfg-1", l.ConfigID)
		assert.Equal(t, "req-1", l.RequestID)
		require.NotNil(t, l.ResponseTimeMs)
		assert.Len(t, rec.all(), 1)

		assert.Equal(t, http.MethodPut, got.Method)
		assert.Equal(t, `{"order": 42}`, gotBody)
		assert.Equal(t, "yes", got.Header.Get("X-Custom"))
		assert.Equal(t, "req-1", got.Header.Get(forwarding.RequestIDHeader))
		assert.Equal(t, "1", got.Header.Get(forwarding.AttemptHeader))
		assert.NotEqual(t, "hooks.example.com", got.Host)
		assert.Empty(t, got.TransferEncoding)
		assert.Equal(t, int64(len(`{"order": 42}`)), got.ContentLength)
	})

	t.Run("non 2xx is a failure with the status", func(t *testing.T) {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer target.Close()

		e, _, _ := newTestEngine(t)
		c := forwarding.Config{ID: "cfg-1", TargetURL: target.URL, TimeoutSeconds: 5}

		l, err := e.ForwardWebhook(ctx, c, testRequest(), 2)

		require.NoError(t, err)
		assert.False(t, l.Success)
		assert.Equal(t, 500, *l.StatusCode)
		assert.Equal(t, "HTTP 500", l.ErrorMessage)
		assert.Equal(t, 2, l.Attempt)
	})

	t.Run("redirects are not followed", func(t *testing.T) {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/elsewhere", http.StatusFound)
		}))
		defer target.Close()

		e, _, _ := newTestEngine(t)
		l, err := e.ForwardWebhook(ctx, forwarding.Config{TargetURL: target.URL, TimeoutSeconds: 5}, testRequest(), 1)

		require.NoError(t, err)
		assert.Equal(t, "HTTP 302", l.ErrorMessage)
	})

	t.Run("connection refused", func(t *testing.T) {
		target := httptest.NewServer(http.NotFoundHandler())
		url := target.URL
		target.Close()

		e, _, _ := newTestEngine(t)
		l, err := e.ForwardWebhook(ctx, forwarding.Config{TargetURL: url, TimeoutSeconds: 5}, testRequest(), 1)

		require.NoError(t, err)
		assert.False(t, l.Success)
		assert.Nil(t, l.StatusCode)
		assert.Equal(t, "Connection refused", l.ErrorMessage)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		}))
		defer target.Close()
		defer close(release)

		e, _, _ := newTestEngine(t)
		l, err := e.ForwardWebhook(ctx, forwarding.Config{TargetURL: target.URL, TimeoutSeconds: 1}, testRequest(), 1)

		require.NoError(t, err)
		assert.False(t, l.Success)
		assert.Nil(t, l.StatusCode)
		assert.Equal(t, "Timeout after 1s", l.ErrorMessage)
	})

	t.Run("log storage failure is returned", func(t *testing.T) {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer target.Close()

		logs := mocks.NewLogWriter(t)
		logs.On("InsertLog", mock.Anything, mock.Anything).Return(errors.New("db down"))
		e := forwarding.NewEngine(logs, zerolog.Nop())

		_, err := e.ForwardWebhook(ctx, forwarding.Config{TargetURL: target.URL, TimeoutSeconds: 5}, testRequest(), 1)

		assert.ErrorContains(t, err, "inserting forwarding log")
	})
}

func TestEngine_ForwardWebhook_Cancelled(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer target.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logs := mocks.NewLogWriter(t)
	var insertErr error
	logs.On("InsertLog", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		insertErr = args.Get(0).(context.Context).Err()
	}).Return(nil).Once()
	e := forwarding.NewEngine(logs, zerolog.Nop())

	l, err := e.ForwardWebhook(ctx, forwarding.Config{ID: "fc-1", TargetURL: target.URL, TimeoutSeconds: 5}, testRequest(), 1)

	require.NoError(t, err)
	assert.False(t, l.Success)
	assert.Equal(t, "fc-1", l.ConfigID)
	assert.NoError(t, insertErr)
}

func TestEngine_ForwardWithRetries(t *testing.T) {
	ctx := context.Background()

	t.Run("stops at first success", func(t *testing.T) {
		var calls atomic.Int32
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer target.Close()

		e, rec, pauses := newTestEngine(t)
		c := forwarding.Config{ID: "cfg-1", TargetURL: target.URL, Active: true, MaxRetries: 5, TimeoutSeconds: 5}

		last, err := e.ForwardWithRetries(ctx, c, testRequest())

		require.NoError(t, err)
		assert.True(t, last.Success)
		assert.Equal(t, 3, last.Attempt)
		logs := rec.all()
		require.Len(t, logs, 3)
		for i, l := range logs {
			assert.Equal(t, i+1, l.Attempt)
		}
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *pauses)
	})

	t.Run("gives up after max retries without a trailing pause", func(t *testing.T) {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer target.Close()

		e, rec, pauses := newTestEngine(t)
		c := forwarding.Config{TargetURL: target.URL, MaxRetries: 4, TimeoutSeconds: 5}

		last, err := e.ForwardWithRetries(ctx, c, testRequest())

		require.NoError(t, err)
		assert.False(t, last.Success)
		assert.Equal(t, 4, last.Attempt)
		assert.Equal(t, "HTTP 502", last.ErrorMessage)
		assert.Len(t, rec.all(), 4)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, *pauses)
	})

	t.Run("pauses are capped at thirty seconds", func(t *testing.T) {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer target.Close()

		e, rec, pauses := newTestEngine(t)
		c := forwarding.Config{TargetURL: target.URL, MaxRetries: 10, TimeoutSeconds: 5}

		_, err := e.ForwardWithRetries(ctx, c, testRequest())

		require.NoError(t, err)
		assert.Len(t, rec.all(), 10)
		s := time.Second
		assert.Equal(t, []time.Duration{s, 2 * s, 4 * s, 8 * s, 16 * s, 30 * s, 30 * s, 30 * s, 30 * s}, *pauses)
	})

	t.Run("cancelled wait stops the sequence", func(t *testing.T) {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer target.Close()

		e, rec, _ := newTestEngine(t)
		e.Sleep = func(context.Context, time.Duration) error { return context.Canceled }

		last, err := e.ForwardWithRetries(ctx, forwarding.Config{TargetURL: target.URL, MaxRetries: 5, TimeoutSeconds: 5}, testRequest())

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, last.Attempt)
		assert.Len(t, rec.all(), 1)
	})
}
