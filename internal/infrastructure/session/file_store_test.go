package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/session"
)

func TestFileStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := session.NewFileStore(path, "user")

	_, err := store.Load(ctx, "user")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, "user", []byte(`{"id":"1"}`)))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(raw), "la llave por defecto se guarda exactamente en path")

	data, err := store.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(data))

	require.NoError(t, store.Delete(ctx, "user"))
	_, err = store.Load(ctx, "user")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "user"), repository.ErrSessionNotFound)
}

func TestFileStore_OtrasLlavesJuntoAlArchivo(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := session.NewFileStore(filepath.Join(dir, "session.json"), "user")

	require.NoError(t, store.Save(ctx, "prefs", []byte("x")))
	_, err := os.Stat(filepath.Join(dir, "prefs.json"))
	assert.NoError(t, err)
}

func TestMemoryStore_CopiaLosDatos(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, store.Save(ctx, "k", buf))
	buf[0] = 'z'

	data, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
	require.NoError(t, store.Delete(ctx, "k"))
	assert.ErrorIs(t, store.Delete(ctx, "k"), repository.ErrSessionNotFound)
}
