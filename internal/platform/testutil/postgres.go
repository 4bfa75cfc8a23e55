// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/taibuivan/kahasolusi/internal/platform/logging"
	"github.com/taibuivan/kahasolusi/internal/platform/migration"
	"github.com/taibuivan/kahasolusi/internal/platform/postgres"
)

const postgresImage = "postgres:16-alpine"

// StartPostgres runs a disposable PostgreSQL container, applies the embedded
// migrations and returns a connected pool. Both are released on test cleanup.
func StartPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("kahasolusi"),
		tcpostgres.WithUsername("cms"),
		tcpostgres.WithPassword("cms"),
		tcpostgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := logging.Discard()
	require.NoError(t, migration.RunUp(dsn, logger))

	pool, err := postgres.NewPool(ctx, dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// Exec runs setup SQL and fails the test on error.
func Exec(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) {
	t.Helper()
	_, err := pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}
