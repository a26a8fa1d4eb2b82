package migrate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/infrastructure/migrate"
)

func setupDatabaseURL(t *testing.T) string {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestRunner_Lifecycle(t *testing.T) {
	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    setupDatabaseURL(t),
		MigrationsPath: "../../../migrations",
	}, zap.NewNop())

	version, dirty, err := runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, dirty)

	require.NoError(t, runner.Run())
	version, dirty, err = runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, runner.Run(), "re-running applied migrations is a no-op")

	require.NoError(t, runner.Rollback())
	version, _, err = runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)

	version, err = runner.Steps(1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestRunner_InvalidMigrationsPath(t *testing.T) {
	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    setupDatabaseURL(t),
		MigrationsPath: "./does-not-exist",
	}, zap.NewNop())

	err := runner.Run()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create migrate instance")
}
