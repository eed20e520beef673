package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-admin/internal/domain"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
	"github.com/jhoicas/inventory-admin/internal/domain/repository"
)

var _ repository.CredentialRepository = (*DemoCredentials)(nil)

// demoAccount cuenta de demostración; la contraseña se hashea al construir DemoCredentials.
type demoAccount struct {
	id, name, email, password string
	role                      entity.Role
}

var demoAccounts = []demoAccount{
	{id: "1", name: "Admin User", email: "admin@company.com", password: "admin123", role: entity.RoleAdmin},
	{id: "2", name: "Manager User", email: "manager@company.com", password: "manager123", role: entity.RoleManager},
}

// DemoCredentials es la tabla fija de cuentas de demostración. Es todo el backend de autenticación:
// no hay registro de usuarios ni almacén real de credenciales.
type DemoCredentials struct {
	byEmail map[string]entity.Credential
	order   []string
}

// NewDemoCredentials construye la tabla y hashea las contraseñas con bcrypt.
func NewDemoCredentials() (*DemoCredentials, error) {
	d := &DemoCredentials{byEmail: make(map[string]entity.Credential, len(demoAccounts))}
	for _, a := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hashear credencial demo: %w", err)
		}
		d.byEmail[a.email] = entity.Credential{
			User: entity.User{
				ID:          a.id,
				Name:        a.name,
				Email:       a.email,
				Role:        a.role,
				Permissions: entity.RolePermissions(a.role),
			},
			PasswordHash: string(hash),
		}
		d.order = append(d.order, a.email)
	}
	return d, nil
}

// FindByEmail busca por email exacto. Devuelve (nil, nil) si no existe.
func (d *DemoCredentials) FindByEmail(_ context.Context, email string) (*entity.Credential, error) {
	c, ok := d.byEmail[email]
	if !ok {
		return nil, nil
	}
	c.User = *c.User.Clone()
	return &c, nil
}

// ListUsers lista los usuarios de la tabla en orden de declaración.
func (d *DemoCredentials) ListUsers(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(d.order))
	for _, email := range d.order {
		c := d.byEmail[email]
		out = append(out, *c.User.Clone())
	}
	return out, nil
}

// authenticate verifica email/password contra el repositorio de credenciales.
// Email inexistente y password incorrecto producen el mismo error.
func authenticate(ctx context.Context, creds repository.CredentialRepository, email, password string) (*entity.User, error) {
	c, err := creds.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar credencial: %w", err)
	}
	if c == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return c.User.Clone(), nil
}
