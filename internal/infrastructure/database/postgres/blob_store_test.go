//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/persistence"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, NewMigration(db, logger.Discard()).RunAutoMigrations())
	return db
}

func TestBlobStoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewBlobStore(db)
	ctx := context.Background()

	_, err := store.Load(ctx, "email_sequences")
	assert.ErrorIs(t, err, persistence.ErrNotFound)

	require.NoError(t, store.Save(ctx, "email_sequences", []byte(`[]`)))
	require.NoError(t, store.Save(ctx, "email_sequences", []byte(`[{"id":"a_1"}]`)))

	data, err := store.Load(ctx, "email_sequences")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a_1"}]`, string(data))

	var count int64
	require.NoError(t, db.Model(&Blob{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, store.Health(ctx))
}
