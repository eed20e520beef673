package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/internal/metrics"
	"github.com/jhoicas/inventory-admin/pkg/logger"
)

// DefaultSessionKey llave fija bajo la que se persiste el usuario.
const DefaultSessionKey = "user"

// SessionConfig configuración del servicio de sesión.
type SessionConfig struct {
	Key        string        // llave del registro persistido
	LoginDelay time.Duration // latencia simulada del login
}

// SessionService mantiene el usuario de la sesión actual y responde consultas de permisos.
// Solo persiste el registro del usuario (id, name, email, role, permissions).
//
// Ciclo de vida:
//  1. NewSessionService deja el servicio en estado "loading".
//  2. Restore rehidrata el usuario persistido (si existe y es válido) y termina la carga.
//  3. Login / Logout modifican memoria y almacén persistido.
type SessionService struct {
	creds repository.CredentialRepository
	store repository.SessionStore
	cfg   SessionConfig
	log   *logger.Logger

	loginMu sync.Mutex // serializa logins concurrentes

	mu      sync.RWMutex
	user    *entity.User
	loading bool
}

// NewSessionService construye el servicio. log puede ser nil.
func NewSessionService(
	creds repository.CredentialRepository,
	store repository.SessionStore,
	cfg SessionConfig,
	log *logger.Logger,
) *SessionService {
	if cfg.Key == "" {
		cfg.Key = DefaultSessionKey
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionService{
		creds:   creds,
		store:   store,
		cfg:     cfg,
		log:     log.Named("session"),
		loading: true,
	}
}

// Restore intenta rehidratar el usuario desde el almacén persistido.
// Registro ausente o malformado: la sesión queda sin usuario y no se devuelve error.
func (s *SessionService) Restore(ctx context.Context) {
	defer s.setLoading(false)

	data, err := s.store.Load(ctx, s.cfg.Key)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			s.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida")
		}
		s.setUser(nil)
		return
	}

	user, err := decodeUser(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("sesión persistida inválida, se inicia sin usuario")
		s.setUser(nil)
		return
	}
	s.setUser(user)
	s.log.Debug().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("sesión restaurada")
}

// Login verifica las credenciales tras la latencia simulada y, si son válidas,
// guarda el usuario en memoria y en el almacén persistido.
// Credenciales inválidas devuelven domain.ErrInvalidCredentials y no tocan la sesión actual.
func (s *SessionService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	if err := wait(ctx, s.cfg.LoginDelay); err != nil {
		return nil, err
	}

	user, err := authenticate(ctx, s.creds, email, password)
	if err != nil {
		metrics.RecordLogin("session", false)
		s.log.Info().Str("email", email).Msg("login rechazado")
		return nil, err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("serializar sesión: %w", err)
	}
	if err := s.store.Save(ctx, s.cfg.Key, data); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}

	s.setUser(user)
	metrics.RecordLogin("session", true)
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login exitoso")
	return user.Clone(), nil
}

// Logout borra el usuario de memoria y del almacén persistido.
// La memoria se limpia aunque falle el almacén.
func (s *SessionService) Logout(ctx context.Context) error {
	s.setUser(nil)
	if err := s.store.Delete(ctx, s.cfg.Key); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}

// HasPermission devuelve false sin usuario; true con el comodín o la capacidad exacta.
func (s *SessionService) HasPermission(capability string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Can(capability)
}

// CurrentUser devuelve una copia del usuario actual o nil.
func (s *SessionService) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// Loading indica si hay una carga (rehidratación o login) en curso.
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionService) setUser(u *entity.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *SessionService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// decodeUser deserializa el registro persistido; sin id se considera malformado.
func decodeUser(data []byte) (*entity.User, error) {
	var u entity.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decodificar usuario: %w", err)
	}
	if u.ID == "" {
		return nil, fmt.Errorf("decodificar usuario: id vacío")
	}
	if !u.Role.Valid() {
		return nil, fmt.Errorf("decodificar usuario: rol desconocido %q", u.Role)
	}
	return &u, nil
}

// wait bloquea durante d o hasta que el contexto se cancele.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
