package forwarding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/marcelsud/hookdash/webhook"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-HookDash-Request-Id"
	AttemptHeader   = "X-HookDash-Attempt"

	// MaxBackoff caps the pause between two attempts.
	MaxBackoff = 30 * time.Second
)

// hop-by-hop or length headers that the outbound client computes itself
var skipHeaders = map[string]struct{}{
	"host":              {},
	"content-length":    {},
	"transfer-encoding": {},
	"connection":        {},
}

// AttemptRecorder receives one observation per delivery attempt.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, outcome string, elapsed time.Duration)
}

/* Engine performs delivery attempts and appends one log row per attempt
 * Transport failures are classified into the log; only storage failures are returned
 */
type Engine struct {
	Logs     LogWriter
	Client   *http.Client
	Recorder AttemptRecorder
	Logger   zerolog.Logger
	Sleep    func(ctx context.Context, d time.Duration) error
	Now      func() time.Time
}

func NewEngine(logs LogWriter, logger zerolog.Logger) *Engine {
	return &Engine{
		Logs: logs,
		Client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		Logger: logger,
		Sleep:  sleep,
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (e *Engine) ForwardWebhook(ctx context.Context, c Config, r webhook.Request, attempt int) (Log, error) {
	start := time.Now()
	outcome, status, msg := e.deliver(ctx, c, r, attempt)
	elapsed := time.Since(start)
	ms := elapsed.Milliseconds()

	l := Log{
		ID:             uuid.New().String(),
		ConfigID:       c.ID,
		RequestID:      r.ID,
		StatusCode:     status,
		Success:        outcome.IsSuccess(),
		ErrorMessage:   msg,
		Attempt:        attempt,
		ResponseTimeMs: &ms,
		CreatedAt:      e.Now(),
	}
	if e.Recorder != nil {
		e.Recorder.RecordAttempt(ctx, outcome.String(), elapsed)
	}
	if !l.Success {
		e.Logger.Warn().
			Str("request_id", r.ID).
			Str("target", c.TargetURL).
			Int("attempt", attempt).
			Str("outcome", outcome.String()).
			Msg(msg)
	}
	// an attempt cut short by shutdown still gets its row
	if err := e.Logs.InsertLog(context.WithoutCancel(ctx), l); err != nil {
		return l, fmt.Errorf("inserting forwarding log: %w", err)
	}
	return l, nil
}

/* ForwardWithRetries stops at the first success
 * Pauses double from one second up to MaxBackoff and never follow the last attempt
 */
func (e *Engine) ForwardWithRetries(ctx context.Context, c Config, r webhook.Request) (Log, error) {
	attempts := max(c.MaxRetries, 1)
	b := newBackOff()
	var last Log
	for attempt := 1; attempt <= attempts; attempt++ {
		l, err := e.ForwardWebhook(ctx, c, r, attempt)
		if err != nil {
			return l, err
		}
		last = l
		if l.Success || attempt == attempts {
			break
		}
		if err := e.Sleep(ctx, b.NextBackOff()); err != nil {
			return last, fmt.Errorf("waiting to retry: %w", err)
		}
	}
	return last, nil
}

func (e *Engine) deliver(ctx context.Context, c Config, r webhook.Request, attempt int) (Outcome, *int, string) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, r.Method, c.TargetURL, strings.NewReader(r.Body))
	if err != nil {
		return Errored, nil, truncate(err.Error(), MaxErrorLength)
	}
	for k, v := range r.Headers {
		if _, skip := skipHeaders[strings.ToLower(k)]; skip {
			continue
		}
		req.Header.Set(k, v)
	}
	req.Header.Set(RequestIDHeader, r.ID)
	req.Header.Set(AttemptHeader, strconv.Itoa(attempt))

	resp, err := e.Client.Do(req)
	if err != nil {
		outcome, msg := classify(err, c)
		return outcome, nil, msg
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return Delivered, &status, ""
	}
	return Rejected, &status, fmt.Sprintf("HTTP %d", status)
}

func classify(err error, c Config) (Outcome, string) {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return TimedOut, fmt.Sprintf("Timeout after %ds", c.TimeoutSeconds)
	}
	if isRefused(err) {
		return Refused, "Connection refused"
	}
	return Errored, truncate(err.Error(), MaxErrorLength)
}

func isRefused(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = MaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
