package webhook

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("webhook request not found")

/* Request is one captured inbound call to an endpoint
 * Immutable once stored: there is no update path
 */
type Request struct {
	ID          string
	EndpointID  string
	Method      string
	Headers     map[string]string
	Body        string
	QueryParams map[string]string
	ContentType string
	SourceIP    string
	BodySize    int64
	CreatedAt   time.Time
}

// Incoming is what the gateway captured from the wire.
type Incoming struct {
	Method      string
	Headers     map[string]string
	Body        string
	QueryParams map[string]string
	ContentType string
	SourceIP    string
}

// Filter narrows a request listing. Empty fields match everything.
type Filter struct {
	Method string
	Search string
}

// Summary aggregates the requests received by all endpoints of one owner.
type Summary struct {
	Total int64
	Today int64
}
