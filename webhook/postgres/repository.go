package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/marcelsud/hookdash/internal/paging"
	"github.com/marcelsud/hookdash/webhook"
)

const columns = `id, endpoint_id, method, headers, body, query_params, content_type,
		source_ip, body_size, created_at`

/* Repository stores captured requests in PostgreSQL
 * Headers and query parameters are kept as JSON text with sorted keys, so a
 * plain ILIKE finds substrings in either of them
 */
type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (webhook.Request, error) {
	var (
		r              webhook.Request
		headers, query string
	)
	err := row.Scan(
		&r.ID,
		&r.EndpointID,
		&r.Method,
		&headers,
		&r.Body,
		&query,
		&r.ContentType,
		&r.SourceIP,
		&r.BodySize,
		&r.CreatedAt,
	)
	if err != nil {
		return webhook.Request{}, err
	}
	if r.Headers, err = decodeMap(headers); err != nil {
		return webhook.Request{}, fmt.Errorf("decoding headers: %w", err)
	}
	if r.QueryParams, err = decodeMap(query); err != nil {
		return webhook.Request{}, fmt.Errorf("decoding query params: %w", err)
	}
	return r, nil
}

func (r *Repository) Insert(ctx context.Context, req webhook.Request) error {
	headers, err := encodeMap(req.Headers)
	if err != nil {
		return fmt.Errorf("encoding headers: %w", err)
	}
	query, err := encodeMap(req.QueryParams)
	if err != nil {
		return fmt.Errorf("encoding query params: %w", err)
	}

	stmt := `
		INSERT INTO webhook_requests (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.DB.ExecContext(ctx, stmt,
		req.ID,
		req.EndpointID,
		req.Method,
		headers,
		req.Body,
		query,
		req.ContentType,
		req.SourceIP,
		req.BodySize,
		req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting webhook request: %w", err)
	}
	return nil
}

func (r *Repository) Select(ctx context.Context, id, endpointID string) (webhook.Request, error) {
	query := "SELECT " + columns + " FROM webhook_requests WHERE id = $1 AND endpoint_id = $2"

	req, err := scan(r.DB.QueryRowContext(ctx, query, id, endpointID))
	if errors.Is(err, sql.ErrNoRows) {
		return webhook.Request{}, webhook.ErrNotFound
	}
	if err != nil {
		return webhook.Request{}, fmt.Errorf("selecting webhook request: %w", err)
	}
	return req, nil
}

func (r *Repository) SelectByEndpoint(ctx context.Context, endpointID string, f webhook.Filter, p paging.Page) ([]webhook.Request, int, error) {
	where, args := filterClause(endpointID, f)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM webhook_requests WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting webhook requests: %w", err)
	}

	n := len(args)
	query := "SELECT " + columns + " FROM webhook_requests WHERE " + where +
		" ORDER BY created_at DESC, id LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
	rows, err := r.DB.QueryContext(ctx, query, append(args, p.Limit(), p.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting webhook requests: %w", err)
	}
	defer rows.Close()

	requests := []webhook.Request{}
	for rows.Next() {
		req, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning webhook request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating webhook requests: %w", err)
	}
	return requests, total, nil
}

func (r *Repository) SummaryByOwner(ctx context.Context, ownerID string, since time.Time) (webhook.Summary, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE r.created_at >= $2)
		FROM webhook_requests r
		JOIN endpoints e ON e.id = r.endpoint_id
		WHERE e.owner_id = $1
	`
	var s webhook.Summary
	if err := r.DB.QueryRowContext(ctx, query, ownerID, since).Scan(&s.Total, &s.Today); err != nil {
		return webhook.Summary{}, fmt.Errorf("summarizing webhook requests: %w", err)
	}
	return s, nil
}

func filterClause(endpointID string, f webhook.Filter) (string, []any) {
	clauses := []string{"endpoint_id = $1"}
	args := []any{endpointID}
	if f.Method != "" {
		args = append(args, strings.ToUpper(f.Method))
		clauses = append(clauses, "method = $"+strconv.Itoa(len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := "$" + strconv.Itoa(len(args))
		clauses = append(clauses, "(body ILIKE "+n+" OR headers ILIKE "+n+" OR query_params ILIKE "+n+")")
	}
	return strings.Join(clauses, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

/* encodeMap writes keys sorted, which gives the canonical form
 * HTML escaping is off so a search for "<" matches the stored text
 */
func encodeMap(m map[string]string) (string, error) {
	if m == nil {
		m = map[string]string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func decodeMap(s string) (map[string]string, error) {
	m := map[string]string{}
	if s == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, err
	}
	return m, nil
}
