package webhook

import (
	"context"
	"time"

	"github.com/marcelsud/hookdash/internal/paging"
)

// Reader provides read operations for stored requests
type Reader interface {
	Select(ctx context.Context, id, endpointID string) (Request, error)
	/* SelectByEndpoint returns one page, newest first, together with the
	 * total number of rows that match the filter
	 */
	SelectByEndpoint(ctx context.Context, endpointID string, f Filter, p paging.Page) ([]Request, int, error)
	SummaryByOwner(ctx context.Context, ownerID string, since time.Time) (Summary, error)
}

// Writer provides write operations for stored requests
type Writer interface {
	Insert(ctx context.Context, r Request) error
}

type Repository interface {
	Reader
	Writer
}
