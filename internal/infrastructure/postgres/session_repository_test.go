package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-admin/pkg/config"
)

// Requiere un PostgreSQL accesible en DATABASE_TEST_URL; sin él se omite.
func TestSessionRepo_Integracion(t *testing.T) {
	url := os.Getenv("DATABASE_TEST_URL")
	if url == "" {
		t.Skip("DATABASE_TEST_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(pool))

	repo := postgres.NewSessionRepository(pool)
	key := "test-" + t.Name()
	_ = repo.Delete(ctx, key)

	_, err = repo.Load(ctx, key)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, repo.Save(ctx, key, []byte(`{"id":"1"}`)))
	require.NoError(t, repo.Save(ctx, key, []byte(`{"id":"2"}`)))
	data, err := repo.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"2"}`, string(data), "save reemplaza el registro")

	// el payload se guarda tal cual, aunque no sea JSON válido
	require.NoError(t, repo.Save(ctx, key, []byte(`{"id":`)))
	data, err = repo.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"id":`, string(data))

	require.NoError(t, repo.Delete(ctx, key))
	assert.ErrorIs(t, repo.Delete(ctx, key), repository.ErrSessionNotFound)
}
