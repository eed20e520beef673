package auth

import (
	"context"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/internal/metrics"
	"github.com/jhoicas/inventory-admin/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login sin estado para la API HTTP: valida credenciales y emite un JWT
// con el rol y los permisos del usuario.
type AuthUseCase struct {
	creds  repository.CredentialRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds repository.CredentialRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := authenticate(ctx, uc.creds, in.Email, in.Password)
	if err != nil {
		metrics.RecordLogin("token", false)
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID:      user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(user.Role),
		Permissions: user.Permissions,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	metrics.RecordLogin("token", true)
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(*user),
	}, nil
}

// ListUsers lista las cuentas conocidas (gestión de usuarios, solo lectura).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.creds.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}
