//go:build !integration

package postgres

import (
	"context"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/marcelsud/hookdash/internal/paging"
	"github.com/marcelsud/hookdash/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requestColumns = []string{
	"id", "endpoint_id", "method", "headers", "body", "query_params", "content_type",
	"source_ip", "body_size", "created_at",
}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Insert_Unit(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()
	req := webhook.Request{
		ID:          "r1",
		EndpointID:  "ep-1",
		Method:      "POST",
		Headers:     map[string]string{"X-B": "2", "X-A": "<1>"},
		Body:        "hi",
		ContentType: "text/plain",
		SourceIP:    "10.0.0.1",
		BodySize:    2,
		CreatedAt:   now,
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO webhook_requests")).
		WithArgs("r1", "ep-1", "POST", `{"X-A":"<1>","X-B":"2"}`, "hi", `{}`, "text/plain", "10.0.0.1", int64(2), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), req))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Select_Unit(t *testing.T) {
	ctx := context.Background()

	t.Run("scoped to endpoint", func(t *testing.T) {
		repo, mock := newMock(t)
		rows := sqlmock.NewRows(requestColumns).
			AddRow("r1", "ep-1", "GET", `{"Accept":"*/*"}`, "", `{"a":"1"}`, "", "::1", 0, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND endpoint_id = $2")).
			WithArgs("r1", "ep-1").WillReturnRows(rows)

		r, err := repo.Select(ctx, "r1", "ep-1")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Accept": "*/*"}, r.Headers)
		assert.Equal(t, map[string]string{"a": "1"}, r.QueryParams)
	})

	t.Run("wrong endpoint", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery("FROM webhook_requests").WithArgs("r1", "ep-2").WillReturnRows(sqlmock.NewRows(requestColumns))

		_, err := repo.Select(ctx, "r1", "ep-2")

		assert.Equal(t, webhook.ErrNotFound, err)
	})
}

func TestRepository_SelectByEndpoint_Unit(t *testing.T) {
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM webhook_requests WHERE endpoint_id = $1")).
			WithArgs("ep-1").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE endpoint_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3")).
			WithArgs("ep-1", 20, 20).
			WillReturnRows(sqlmock.NewRows(requestColumns).
				AddRow("r1", "ep-1", "GET", `{}`, "", `{}`, "", "", 0, time.Now()))

		all, total, err := repo.SelectByEndpoint(ctx, "ep-1", webhook.Filter{}, paging.New(2, 20))

		require.NoError(t, err)
		assert.Equal(t, 21, total)
		assert.Len(t, all, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("method and search", func(t *testing.T) {
		repo, mock := newMock(t)
		where := "endpoint_id = $1 AND method = $2 AND (body ILIKE $3 OR headers ILIKE $3 OR query_params ILIKE $3)"
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM webhook_requests WHERE "+where)).
			WithArgs("ep-1", "POST", `%50\%\_off%`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(where+" ORDER BY created_at DESC, id LIMIT $4 OFFSET $5")).
			WithArgs("ep-1", "POST", `%50\%\_off%`, 20, 0).
			WillReturnRows(sqlmock.NewRows(requestColumns))

		all, total, err := repo.SelectByEndpoint(ctx, "ep-1", webhook.Filter{Method: "post", Search: "50%_off"}, paging.New(1, 20))

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, all)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SummaryByOwner_Unit(t *testing.T) {
	repo, mock := newMock(t)
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE r.created_at >= $2)")).
		WithArgs("user-1", since).
		WillReturnRows(sqlmock.NewRows([]string{"total", "today"}).AddRow(12, 4))

	s, err := repo.SummaryByOwner(context.Background(), "user-1", since)

	require.NoError(t, err)
	assert.Equal(t, webhook.Summary{Total: 12, Today: 4}, s)
}

func TestRepository_Contract(t *testing.T) {
	var _ webhook.Repository = (*Repository)(nil)

	_, hasClose := reflect.TypeOf((*webhook.Repository)(nil)).Elem().MethodByName("Close")
	assert.False(t, hasClose)
}
