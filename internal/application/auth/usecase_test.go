package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/application/auth"
	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/domain"
	"github.com/jhoicas/inventory-admin/pkg/jwt"
)

func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	creds, err := auth.NewDemoCredentials()
	require.NoError(t, err)
	return auth.NewAuthUseCase(creds, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "test"})
}

func TestAuthUseCase_LoginEmiteToken(t *testing.T) {
	uc := newAuthUseCase(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "manager@company.com", Password: "manager123"})
	require.NoError(t, err)
	assert.Equal(t, "2", out.User.ID)
	assert.Equal(t, "manager", out.User.Role)

	sub, err := jwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "2", sub.UserID)
	assert.Contains(t, sub.Permissions, "reports.read")
}

func TestAuthUseCase_LoginInvalido(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@company.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthUseCase_ListUsers(t *testing.T) {
	uc := newAuthUseCase(t)
	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin@company.com", users[0].Email)
	assert.Equal(t, []string{"all"}, users[0].Permissions)
}

func TestDemoCredentials_ListUsersDevuelveCopias(t *testing.T) {
	creds, err := auth.NewDemoCredentials()
	require.NoError(t, err)

	users, err := creds.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "manager@company.com", users[1].Email)
	users[0].Permissions[0] = "products.read"

	again, err := creds.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"all"}, again[0].Permissions)
}
