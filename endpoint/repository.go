package endpoint

import "context"

// Reader provides read operations for endpoints
type Reader interface {
	// Select loads an endpoint by id regardless of owner.
	Select(ctx context.Context, id string) (Endpoint, error)
	SelectByOwner(ctx context.Context, ownerID string) ([]Endpoint, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

// Writer provides write operations for endpoints
type Writer interface {
	Insert(ctx context.Context, e Endpoint) error
	Update(ctx context.Context, e Endpoint) error
	/* Delete removes the endpoint; stored requests and the forwarding
	 * configuration go with it through the foreign keys
	 */
	Delete(ctx context.Context, id string) error
	IncrementRequestCount(ctx context.Context, id string) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
