package auth

import (
	"context"
	"errors"
)

/* Identity is owned by an external service. This package only describes the
 * contract the rest of the application consumes, plus a token validator that
 * understands the tokens that service issues.
 */

// Plan names known to the quota checker.
const (
	PlanFree = "free"
	PlanPro  = "pro"
	PlanTeam = "team"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Principal is the authenticated owner of endpoints.
type Principal struct {
	ID   string
	Plan string
}

// Credentials are whatever the identity service accepts at login.
type Credentials struct {
	Email    string
	Password string
}

// Authenticator exchanges credentials for a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials Credentials) (Principal, error)
}

// Validator resolves a session token to a principal.
type Validator interface {
	Validate(ctx context.Context, token string) (Principal, error)
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored by WithPrincipal.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
