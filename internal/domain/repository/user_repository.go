package repository

import (
	"context"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// CredentialRepository define el puerto de lectura de credenciales (DIP).
// FindByEmail devuelve (nil, nil) si el email no existe.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
}
