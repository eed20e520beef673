package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/inventory-admin/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func testSubject() pkgjwt.Subject {
	return pkgjwt.Subject{
		UserID:      "2",
		Email:       "manager@company.com",
		Name:        "Manager User",
		Role:        "manager",
		Permissions: []string{"products.read", "reports.read"},
	}
}

func TestGenerateAndParse_ConservaPermisos(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), "inventory-admin-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "2", sub.UserID)
	assert.Equal(t, "manager@company.com", sub.Email)
	assert.Equal(t, "manager", sub.Role)
	assert.Equal(t, []string{"products.read", "reports.read"}, sub.Permissions)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), "inventory-admin-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject(), "inventory-admin-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject(), "x", 60)
	assert.Error(t, err)
}
