package endpoint

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
	MaxBodyLength        = 10000
	MaxContentTypeLength = 100

	MinStatusCode = 100
	MaxStatusCode = 599

	DefaultStatusCode  = 200
	DefaultBody        = `{"ok": true}`
	DefaultContentType = "application/json"
)

var (
	ErrNotFound      = errors.New("endpoint not found")
	ErrInvalid       = errors.New("invalid endpoint")
	ErrQuotaExceeded = errors.New("endpoint limit reached for plan")
)

/* Endpoint is a user-owned receiving address
 * Uses value semantics as it represents data, not behavior
 */
type Endpoint struct {
	ID           string
	OwnerID      string
	Name         string
	Description  string
	Active       bool
	Response     Response
	RequestCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Response is the canned reply served to every accepted webhook.
type Response struct {
	StatusCode  int
	Body        string
	ContentType string
}

func DefaultResponse() Response {
	return Response{
		StatusCode:  DefaultStatusCode,
		Body:        DefaultBody,
		ContentType: DefaultContentType,
	}
}

func (r Response) Validate() error {
	if r.StatusCode < MinStatusCode || r.StatusCode > MaxStatusCode {
		return fmt.Errorf("%w: response code must be between %d and %d", ErrInvalid, MinStatusCode, MaxStatusCode)
	}
	if utf8.RuneCountInString(r.Body) > MaxBodyLength {
		return fmt.Errorf("%w: response body must be at most %d characters", ErrInvalid, MaxBodyLength)
	}
	if utf8.RuneCountInString(r.ContentType) > MaxContentTypeLength {
		return fmt.Errorf("%w: content type must be at most %d characters", ErrInvalid, MaxContentTypeLength)
	}
	return nil
}

func (e Endpoint) Validate() error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return fmt.Errorf("%w: endpoint name is required", ErrInvalid)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: name must be under %d characters", ErrInvalid, MaxNameLength)
	}
	if utf8.RuneCountInString(e.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalid, MaxDescriptionLength)
	}
	return e.Response.Validate()
}

// Input carries the fields a user supplies when creating an endpoint.
type Input struct {
	Name        string
	Description string
	Response    Response
}

/* Patch applies only the fields that were provided
 * A nil pointer means "leave unchanged"
 */
type Patch struct {
	Name        *string
	Description *string
	Active      *bool
	StatusCode  *int
	Body        *string
	ContentType *string
}

func (p Patch) Apply(e Endpoint) Endpoint {
	if p.Name != nil {
		e.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		e.Description = strings.TrimSpace(*p.Description)
	}
	if p.Active != nil {
		e.Active = *p.Active
	}
	if p.StatusCode != nil {
		e.Response.StatusCode = *p.StatusCode
	}
	if p.Body != nil {
		e.Response.Body = *p.Body
	}
	if p.ContentType != nil {
		e.Response.ContentType = *p.ContentType
	}
	return e
}
