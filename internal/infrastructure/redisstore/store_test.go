package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/redisstore"
)

// Requiere un Redis accesible en REDIS_TEST_ADDR; sin él se omite.
func TestStore_Integracion(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	ctx := context.Background()
	client, err := redisstore.Connect(ctx, redisstore.Config{Addr: addr, DB: 15})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := redisstore.New(client)
	key := "test-" + t.Name()
	_ = store.Delete(ctx, key)

	_, err = store.Load(ctx, key)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, key, []byte(`{"id":"1"}`)))
	data, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(data))

	require.NoError(t, store.Delete(ctx, key))
	assert.ErrorIs(t, store.Delete(ctx, key), repository.ErrSessionNotFound)
}
