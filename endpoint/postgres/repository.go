package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/hookdash/endpoint"
)

const columns = `id, owner_id, name, description, is_active, response_code, response_body,
		response_content_type, request_count, created_at, updated_at`

// Repository stores endpoints in PostgreSQL. The pool is owned by the caller.
type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (endpoint.Endpoint, error) {
	var e endpoint.Endpoint
	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Name,
		&e.Description,
		&e.Active,
		&e.Response.StatusCode,
		&e.Response.Body,
		&e.Response.ContentType,
		&e.RequestCount,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *Repository) Select(ctx context.Context, id string) (endpoint.Endpoint, error) {
	query := "SELECT " + columns + " FROM endpoints WHERE id = $1"

	e, err := scan(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return endpoint.Endpoint{}, endpoint.ErrNotFound
	}
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("selecting endpoint: %w", err)
	}
	return e, nil
}

// SelectByOwner returns newest first. An owner without endpoints gets an empty slice.
func (r *Repository) SelectByOwner(ctx context.Context, ownerID string) ([]endpoint.Endpoint, error) {
	query := "SELECT " + columns + " FROM endpoints WHERE owner_id = $1 ORDER BY created_at DESC, id"

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("selecting endpoints: %w", err)
	}
	defer rows.Close()

	endpoints := []endpoint.Endpoint{}
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning endpoint: %w", err)
		}
		endpoints = append(endpoints, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating endpoints: %w", err)
	}
	return endpoints, nil
}

func (r *Repository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM endpoints WHERE owner_id = $1", ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting endpoints: %w", err)
	}
	return n, nil
}

func (r *Repository) Insert(ctx context.Context, e endpoint.Endpoint) error {
	query := `
		INSERT INTO endpoints (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.OwnerID,
		e.Name,
		e.Description,
		e.Active,
		e.Response.StatusCode,
		e.Response.Body,
		e.Response.ContentType,
		e.RequestCount,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting endpoint: %w", err)
	}
	return nil
}

// Update never touches request_count, which only IncrementRequestCount moves.
func (r *Repository) Update(ctx context.Context, e endpoint.Endpoint) error {
	query := `
		UPDATE endpoints
		SET name = $1, description = $2, is_active = $3, response_code = $4,
			response_body = $5, response_content_type = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name,
		e.Description,
		e.Active,
		e.Response.StatusCode,
		e.Response.Body,
		e.Response.ContentType,
		e.UpdatedAt,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating endpoint: %w", err)
	}
	return affectedOne(result)
}

// Delete relies on ON DELETE CASCADE for requests, configs and logs.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM endpoints WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting endpoint: %w", err)
	}
	return affectedOne(result)
}

/* IncrementRequestCount is a single atomic statement
 * Concurrent receipts on the same endpoint never lose an increment
 */
func (r *Repository) IncrementRequestCount(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE endpoints SET request_count = request_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("incrementing request count: %w", err)
	}
	return affectedOne(result)
}

func (r *Repository) Close(ctx context.Context) error {
	return nil
}

func affectedOne(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return endpoint.ErrNotFound
	}
	return nil
}
