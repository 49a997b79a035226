package forwarding

import (
	"context"

	"github.com/marcelsud/hookdash/internal/paging"
)

// Reader provides read operations for configs and their logs
type Reader interface {
	SelectByEndpoint(ctx context.Context, endpointID string) (Config, error)
	SelectLogs(ctx context.Context, configID string, p paging.Page) ([]Log, int, error)
	SelectTotals(ctx context.Context, configID string) (Totals, error)
}

// LogWriter is all the engine needs from storage
type LogWriter interface {
	InsertLog(ctx context.Context, l Log) error
}

// Writer provides write operations for configs and their logs
type Writer interface {
	LogWriter
	/* Upsert creates the config of an endpoint or replaces its settings
	 * The stored row is returned, keeping the original ID and CreatedAt
	 */
	Upsert(ctx context.Context, c Config) (Config, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Reader
	Writer
}
