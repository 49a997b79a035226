//go:build integration

// Package pgtest starts a throwaway PostgreSQL for integration tests.
package pgtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	hookpg "github.com/marcelsud/hookdash/internal/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultDatabase = "hookdash"
	defaultUser     = "hookdash"
	defaultPassword = "hookdash"
)

type Container struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

/* SetupPostgresContainer runs postgres:16-alpine and applies the schema
 * Set TESTCONTAINERS_REUSE_ENABLE=true to keep the container between runs
 */
func SetupPostgresContainer(t *testing.T, ctx context.Context) (*Container, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(defaultDatabase),
		postgres.WithUsername(defaultUser),
		postgres.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := hookpg.Open(ctx, connStr, 10, 5, 5)
	require.NoError(t, err)
	require.NoError(t, hookpg.Migrate(ctx, db))

	cleanup := func() {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return &Container{Container: pgContainer, DB: db, ConnStr: connStr}, cleanup
}

// InsertEndpoint adds a bare endpoint row so child tables can reference it.
func InsertEndpoint(t *testing.T, ctx context.Context, db *sql.DB, id, ownerID string) {
	t.Helper()

	_, err := db.ExecContext(ctx,
		`INSERT INTO endpoints (id, owner_id, name) VALUES ($1, $2, $3)`,
		id, ownerID, "endpoint "+id,
	)
	require.NoError(t, err)
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, ctx context.Context, db *sql.DB, table string) int {
	t.Helper()

	var n int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}
