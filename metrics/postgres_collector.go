package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresCollector implements the Collector interface with aggregate queries
type PostgresCollector struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresCollector(db *sql.DB) *PostgresCollector {
	return &PostgresCollector{db: db, now: time.Now}
}

func (c *PostgresCollector) Collect(ctx context.Context) (Metrics, error) {
	entities, err := c.GetEntityCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting entity counts: %w", err)
	}

	deliveries, err := c.GetDeliveryCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting delivery counts: %w", err)
	}

	throughput, err := c.GetThroughput(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting throughput: %w", err)
	}

	return Metrics{
		Entities:   entities,
		Deliveries: deliveries,
		Throughput: throughput,
		Timestamp:  c.now(),
	}, nil
}

func (c *PostgresCollector) GetEntityCounts(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM endpoints),
			(SELECT COUNT(*) FROM endpoints WHERE is_active),
			(SELECT COUNT(*) FROM webhook_requests),
			(SELECT COUNT(*) FROM forwarding_configs),
			(SELECT COUNT(*) FROM forwarding_configs WHERE is_active)
	`
	var endpoints, activeEndpoints, requests, configs, activeConfigs int64
	err := c.db.QueryRowContext(ctx, query).Scan(&endpoints, &activeEndpoints, &requests, &configs, &activeConfigs)
	if err != nil {
		return nil, fmt.Errorf("counting entities: %w", err)
	}
	return map[string]int64{
		"endpoints":                 endpoints,
		"endpoints_active":          activeEndpoints,
		"webhook_requests":          requests,
		"forwarding_configs":        configs,
		"forwarding_configs_active": activeConfigs,
	}, nil
}

func (c *PostgresCollector) GetDeliveryCounts(ctx context.Context) (map[string]int64, error) {
	query := `SELECT COUNT(*) FILTER (WHERE success), COUNT(*) FILTER (WHERE NOT success) FROM forwarding_logs`

	var success, failure int64
	if err := c.db.QueryRowContext(ctx, query).Scan(&success, &failure); err != nil {
		return nil, fmt.Errorf("counting deliveries: %w", err)
	}
	return map[string]int64{"success": success, "failure": failure}, nil
}

func (c *PostgresCollector) GetThroughput(ctx context.Context) (ThroughputMetrics, error) {
	now := c.now()
	query := `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= $1),
			COUNT(*) FILTER (WHERE created_at >= $2),
			COUNT(*)
		FROM webhook_requests
		WHERE created_at >= $3
	`
	var tp ThroughputMetrics
	err := c.db.QueryRowContext(ctx, query,
		now.Add(-time.Minute),
		now.Add(-5*time.Minute),
		now.Add(-15*time.Minute),
	).Scan(&tp.LastMinute, &tp.LastFiveMinutes, &tp.LastFifteenMinutes)
	if err != nil {
		return ThroughputMetrics{}, fmt.Errorf("counting throughput: %w", err)
	}
	return tp, nil
}
