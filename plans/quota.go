package plans

import (
	"context"
	"fmt"

	"github.com/marcelsud/hookdash/auth"
)

// EndpointCounter is the read the quota needs from the endpoint store.
type EndpointCounter interface {
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

type QuotaChecker struct {
	Plans   *Loader
	Counter EndpointCounter
}

func NewQuotaChecker(plans *Loader, counter EndpointCounter) *QuotaChecker {
	return &QuotaChecker{Plans: plans, Counter: counter}
}

func (q *QuotaChecker) MayCreateEndpoint(ctx context.Context, p auth.Principal) (bool, error) {
	n, err := q.Counter.CountByOwner(ctx, p.ID)
	if err != nil {
		return false, fmt.Errorf("counting endpoints: %w", err)
	}
	return n < q.Limit(p), nil
}

// Limit is the endpoint allowance of the principal's plan.
func (q *QuotaChecker) Limit(p auth.Principal) int {
	return q.Plans.Get(p.Plan).MaxEndpoints
}
