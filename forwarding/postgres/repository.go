package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/hookdash/forwarding"
	"github.com/marcelsud/hookdash/internal/paging"
)

const (
	configColumns = `id, endpoint_id, target_url, is_active, max_retries, timeout_seconds, created_at, updated_at`
	logColumns    = `id, forwarding_config_id, webhook_request_id, status_code, success, error_message,
		attempt_number, response_time_ms, created_at`
)

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConfig(row scanner) (forwarding.Config, error) {
	var c forwarding.Config
	err := row.Scan(
		&c.ID,
		&c.EndpointID,
		&c.TargetURL,
		&c.Active,
		&c.MaxRetries,
		&c.TimeoutSeconds,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *Repository) SelectByEndpoint(ctx context.Context, endpointID string) (forwarding.Config, error) {
	query := "SELECT " + configColumns + " FROM forwarding_configs WHERE endpoint_id = $1"

	c, err := scanConfig(r.DB.QueryRowContext(ctx, query, endpointID))
	if errors.Is(err, sql.ErrNoRows) {
		return forwarding.Config{}, forwarding.ErrNotFound
	}
	if err != nil {
		return forwarding.Config{}, fmt.Errorf("selecting forwarding config: %w", err)
	}
	return c, nil
}

/* Upsert relies on the unique endpoint_id
 * Two concurrent saves for one endpoint both succeed and the last one wins
 */
func (r *Repository) Upsert(ctx context.Context, c forwarding.Config) (forwarding.Config, error) {
	query := `
		INSERT INTO forwarding_configs (` + configColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (endpoint_id) DO UPDATE
		SET target_url = EXCLUDED.target_url,
			is_active = EXCLUDED.is_active,
			max_retries = EXCLUDED.max_retries,
			timeout_seconds = EXCLUDED.timeout_seconds,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + configColumns

	stored, err := scanConfig(r.DB.QueryRowContext(ctx, query,
		c.ID,
		c.EndpointID,
		c.TargetURL,
		c.Active,
		c.MaxRetries,
		c.TimeoutSeconds,
		c.CreatedAt,
		c.UpdatedAt,
	))
	if err != nil {
		return forwarding.Config{}, fmt.Errorf("upserting forwarding config: %w", err)
	}
	return stored, nil
}

// Delete removes the config; its logs go with it through ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM forwarding_configs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting forwarding config: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return forwarding.ErrNotFound
	}
	return nil
}

func (r *Repository) InsertLog(ctx context.Context, l forwarding.Log) error {
	query := `
		INSERT INTO forwarding_logs (` + logColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		l.ID,
		l.ConfigID,
		l.RequestID,
		nullInt(l.StatusCode),
		l.Success,
		l.ErrorMessage,
		l.Attempt,
		nullInt64(l.ResponseTimeMs),
		l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting forwarding log: %w", err)
	}
	return nil
}

func (r *Repository) SelectLogs(ctx context.Context, configID string, p paging.Page) ([]forwarding.Log, int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM forwarding_logs WHERE forwarding_config_id = $1", configID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting forwarding logs: %w", err)
	}

	query := "SELECT " + logColumns + ` FROM forwarding_logs
		WHERE forwarding_config_id = $1
		ORDER BY created_at DESC, attempt_number DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, configID, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("selecting forwarding logs: %w", err)
	}
	defer rows.Close()

	logs := []forwarding.Log{}
	for rows.Next() {
		var (
			l       forwarding.Log
			status  sql.NullInt32
			elapsed sql.NullInt64
		)
		err := rows.Scan(
			&l.ID,
			&l.ConfigID,
			&l.RequestID,
			&status,
			&l.Success,
			&l.ErrorMessage,
			&l.Attempt,
			&elapsed,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning forwarding log: %w", err)
		}
		if status.Valid {
			code := int(status.Int32)
			l.StatusCode = &code
		}
		if elapsed.Valid {
			l.ResponseTimeMs = &elapsed.Int64
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating forwarding logs: %w", err)
	}
	return logs, total, nil
}

// SelectTotals averages only attempts that carry a response time.
func (r *Repository) SelectTotals(ctx context.Context, configID string) (forwarding.Totals, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE success), COALESCE(AVG(response_time_ms), 0)
		FROM forwarding_logs
		WHERE forwarding_config_id = $1
	`
	var t forwarding.Totals
	if err := r.DB.QueryRowContext(ctx, query, configID).Scan(&t.Total, &t.Successes, &t.AvgResponseMs); err != nil {
		return forwarding.Totals{}, fmt.Errorf("selecting forwarding totals: %w", err)
	}
	return t, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
