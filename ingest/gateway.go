package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/marcelsud/hookdash/endpoint"
	"github.com/marcelsud/hookdash/forwarding"
	"github.com/marcelsud/hookdash/webhook"
	"github.com/rs/zerolog"
)

var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrEndpointInactive = errors.New("endpoint is inactive")
	ErrPayloadTooLarge  = errors.New("request body too large")
)

const unknownSource = "unknown"

// TooLargeError carries the limit a rejected body exceeded.
type TooLargeError struct {
	Limit int64
}

func (e *TooLargeError) Error() string {
	return ErrPayloadTooLarge.Error()
}

func (e *TooLargeError) Is(target error) bool {
	return target == ErrPayloadTooLarge
}

type EndpointGetter interface {
	GetByID(ctx context.Context, id string) (endpoint.Endpoint, error)
}

type RequestStore interface {
	Store(ctx context.Context, endpointID string, in webhook.Incoming) (webhook.Request, error)
}

type Dispatcher interface {
	Dispatch(endpointID, requestID string)
}

// ReceiveRecorder counts accepted webhooks.
type ReceiveRecorder interface {
	RecordReceived(ctx context.Context)
}

/* Gateway is the public receiving side of an endpoint
 * It never authenticates: knowing the endpoint id is enough to post to it
 */
type Gateway struct {
	Endpoints   EndpointGetter
	Requests    RequestStore
	Forwarding  forwarding.ConfigGetter
	Dispatcher  Dispatcher
	Recorder    ReceiveRecorder
	Logger      zerolog.Logger
	MaxBodySize int64
}

func NewGateway(endpoints EndpointGetter, requests RequestStore, configs forwarding.ConfigGetter, dispatcher Dispatcher, maxBodySize int64) *Gateway {
	return &Gateway{
		Endpoints:   endpoints,
		Requests:    requests,
		Forwarding:  configs,
		Dispatcher:  dispatcher,
		Logger:      zerolog.Nop(),
		MaxBodySize: maxBodySize,
	}
}

/* Receive captures r for the endpoint and returns the endpoint's canned response
 * Once the request is stored the response no longer depends on forwarding
 */
func (g *Gateway) Receive(ctx context.Context, endpointID string, r *http.Request) (endpoint.Response, error) {
	e, err := g.Endpoints.GetByID(ctx, endpointID)
	if errors.Is(err, endpoint.ErrNotFound) {
		return endpoint.Response{}, ErrEndpointNotFound
	}
	if err != nil {
		return endpoint.Response{}, fmt.Errorf("resolving endpoint: %w", err)
	}
	if !e.Active {
		return endpoint.Response{}, ErrEndpointInactive
	}

	if r.ContentLength > g.MaxBodySize {
		return endpoint.Response{}, &TooLargeError{Limit: g.MaxBodySize}
	}
	body, err := g.readBody(r.Body)
	if err != nil {
		return endpoint.Response{}, err
	}

	stored, err := g.Requests.Store(ctx, e.ID, webhook.Incoming{
		Method:      r.Method,
		Headers:     cleanValues(flattenHeaders(r)),
		Body:        decode(body),
		QueryParams: cleanValues(flattenQuery(r)),
		ContentType: clean(r.Header.Get("Content-Type")),
		SourceIP:    clean(sourceIP(r.RemoteAddr)),
	})
	if err != nil {
		return endpoint.Response{}, fmt.Errorf("storing webhook: %w", err)
	}
	if g.Recorder != nil {
		g.Recorder.RecordReceived(ctx)
	}

	g.dispatch(ctx, stored)
	return e.Response, nil
}

func (g *Gateway) readBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(io.LimitReader(body, g.MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(data)) > g.MaxBodySize {
		return nil, &TooLargeError{Limit: g.MaxBodySize}
	}
	return data, nil
}

func (g *Gateway) dispatch(ctx context.Context, r webhook.Request) {
	if g.Forwarding == nil || g.Dispatcher == nil {
		return
	}
	c, err := g.Forwarding.Get(ctx, r.EndpointID)
	if errors.Is(err, forwarding.ErrNotFound) {
		return
	}
	if err != nil {
		g.Logger.Error().Err(err).
			Str("endpoint_id", r.EndpointID).
			Str("request_id", r.ID).
			Msg("loading forwarding config")
		return
	}
	if c.Active {
		g.Dispatcher.Dispatch(r.EndpointID, r.ID)
	}
}

/* decode replaces each maximal invalid subpart with one U+FFFD
 * NUL becomes U+FFFD too, text columns cannot hold it
 */
func decode(b []byte) string {
	if utf8.Valid(b) && bytes.IndexByte(b, 0) < 0 {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			size = invalidPrefix(b)
		}
		if r == 0 {
			r = utf8.RuneError
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// invalidPrefix is the length of the truncated sequence starting b, at least one byte.
func invalidPrefix(b []byte) int {
	var need int
	lo, hi := byte(0x80), byte(0xBF)
	switch c := b[0]; {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		need, lo = 2, 0xA0
	case c == 0xED:
		need, hi = 2, 0x9F
	case c >= 0xE1 && c <= 0xEF:
		need = 2
	case c == 0xF0:
		need, lo = 3, 0x90
	case c == 0xF4:
		need, hi = 3, 0x8F
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	default:
		return 1
	}
	n := 1
	for ; n <= need && n < len(b); n++ {
		if b[n] < lo || b[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return n
}

// clean applies decode to header-derived strings, which net/http passes through as raw bytes.
func clean(s string) string {
	if strings.IndexByte(s, 0) < 0 && utf8.ValidString(s) {
		return s
	}
	return decode([]byte(s))
}

func cleanValues(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[clean(k)] = clean(v)
	}
	return out
}

// flattenHeaders lower-cases names and puts back the Host header net/http strips.
func flattenHeaders(r *http.Request) map[string]string {
	out := make(map[string]string, len(r.Header)+1)
	for k, vs := range r.Header {
		out[strings.ToLower(k)] = strings.Join(vs, ", ")
	}
	if r.Host != "" {
		out["host"] = r.Host
	}
	return out
}

// flattenQuery keeps the last value of repeated parameters.
func flattenQuery(r *http.Request) map[string]string {
	q := r.URL.Query()
	out := make(map[string]string, len(q))
	for k, vs := range q {
		out[k] = vs[len(vs)-1]
	}
	return out
}

func sourceIP(remoteAddr string) string {
	if remoteAddr == "" {
		return unknownSource
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
