//go:build integration

package history

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "dmar",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/dmar?sslmode=disable", host, port.Port())
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Eventually(t, func() bool { return db.PingContext(ctx) == nil }, 10*time.Second, 200*time.Millisecond)
	return db
}

func TestRepository_Postgres(t *testing.T) {
	db := startPostgres(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Migrate(ctx))

	first := customRecord()
	second := customRecord()
	second.Reference = "ORD-8"
	second.Details = domain.PackageDetails{PackageID: 1, PackageName: "Island Escape", Activities: []string{}}

	require.NoError(t, repo.Append(ctx, "sess", first))
	require.NoError(t, repo.Append(ctx, "sess", second))
	require.NoError(t, repo.Append(ctx, "other", first))

	got, err := repo.List(ctx, "sess")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ORD-7", got[0].Reference)
	assert.Equal(t, first.Details, got[0].Details)
	assert.True(t, first.CreatedAt.Equal(got[0].CreatedAt))
	assert.Equal(t, "ORD-8", got[1].Reference)
	assert.Equal(t, domain.ModePackage, got[1].Details.Mode())
}
