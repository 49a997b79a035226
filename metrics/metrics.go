package metrics

import (
	"context"
	"time"
)

// Metrics is a point-in-time snapshot of the platform.
type Metrics struct {
	// Entities maps a table ("endpoints", "webhook_requests", ...) to its row count
	Entities map[string]int64 `json:"entities"`

	// Deliveries maps "success" and "failure" to forwarding attempt counts
	Deliveries map[string]int64 `json:"deliveries"`

	// Throughput counts webhooks received over recent windows
	Throughput ThroughputMetrics `json:"throughput"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// ThroughputMetrics represents webhooks received over different time windows.
type ThroughputMetrics struct {
	LastMinute         int64 `json:"last_minute"`
	LastFiveMinutes    int64 `json:"last_five_minutes"`
	LastFifteenMinutes int64 `json:"last_fifteen_minutes"`
}

// Collector defines the interface for collecting metrics from the datastore.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetEntityCounts returns row counts per table, plus active endpoints and configs
	GetEntityCounts(ctx context.Context) (map[string]int64, error)

	// GetDeliveryCounts returns forwarding attempts split by success
	GetDeliveryCounts(ctx context.Context) (map[string]int64, error)

	// GetThroughput returns webhooks received over time windows
	GetThroughput(ctx context.Context) (ThroughputMetrics, error)
}
