package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/cli"
	"github.com/jhoicas/inventory-admin/internal/domain"
	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/session"
	"github.com/jhoicas/inventory-admin/pkg/config"
	"github.com/jhoicas/inventory-admin/pkg/logger"
)

// invctl ejecuta un comando contra un almacén compartido, como invocaciones sucesivas del binario.
func invctl(t *testing.T, store repository.SessionStore, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cli.Run(context.Background(), cli.Options{
		Config: &config.Config{
			App:       config.AppConfig{Env: "test"},
			Session:   config.SessionConfig{Store: config.SessionStoreFile, Key: "user"},
			Inventory: config.InventoryConfig{Seed: true},
		},
		Logger: logger.Nop(),
		OpenStore: func(context.Context, *config.Config, *logger.Logger) (repository.SessionStore, func(), error) {
			return store, func() {}, nil
		},
		Out: &out,
	}, args)
	return out.String(), err
}

func TestCLI_FlujoDeSesion(t *testing.T) {
	store := session.NewMemoryStore()

	_, err := invctl(t, store, "whoami")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = invctl(t, store, "login", "--email", "manager@company.com", "--password", "mal")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	out, err := invctl(t, store, "login", "--email", "manager@company.com", "--password", "manager123")
	require.NoError(t, err)
	assert.Contains(t, out, "Manager User")

	// la siguiente invocación rehidrata la sesión
	out, err = invctl(t, store, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "manager@company.com")
	assert.Contains(t, out, "rol: manager")

	out, err = invctl(t, store, "can", "reports.read")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))
	out, err = invctl(t, store, "can", "dashboard.read")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))

	_, err = invctl(t, store, "logout")
	require.NoError(t, err)
	out, err = invctl(t, store, "can", "reports.read")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))
}

func TestCLI_Reporte(t *testing.T) {
	store := session.NewMemoryStore()

	_, err := invctl(t, store, "report")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = invctl(t, store, "login", "--email", "admin@company.com", "--password", "admin123")
	require.NoError(t, err)

	out, err := invctl(t, store, "report", "--json")
	require.NoError(t, err)
	var rep dto.InventoryReportDTO
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 3, rep.TotalProducts)
	assert.Equal(t, 1, rep.LowStockItems)

	out, err = invctl(t, store, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Electronics")
	assert.Contains(t, out, "Smart Watch")
}

func TestCLI_Exportar(t *testing.T) {
	store := session.NewMemoryStore()
	_, err := invctl(t, store, "login", "--email", "manager@company.com", "--password", "manager123")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reporte.xlsx")
	out, err := invctl(t, store, "export", "--format", "xlsx", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx es un zip")

	_, err = invctl(t, store, "export", "--format", "csv", "--out", path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestCLI_CierraElAlmacenAunqueFalleElComando(t *testing.T) {
	closed := 0
	opts := cli.Options{
		Config: &config.Config{Session: config.SessionConfig{Key: "user"}},
		Logger: logger.Nop(),
		Out:    &bytes.Buffer{},
		OpenStore: func(context.Context, *config.Config, *logger.Logger) (repository.SessionStore, func(), error) {
			return session.NewMemoryStore(), func() { closed++ }, nil
		},
	}

	err := cli.Run(context.Background(), opts, []string{"login", "--email", "admin@company.com", "--password", "mal"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 1, closed)

	err = cli.Run(context.Background(), opts, []string{"report"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 2, closed)

	require.NoError(t, cli.Run(context.Background(), opts, []string{"can", "products.read"}))
	assert.Equal(t, 3, closed)
}
