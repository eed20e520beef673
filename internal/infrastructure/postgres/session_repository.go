package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventory-admin/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionRepo)(nil)

// SessionRepo implementación de repository.SessionStore sobre la tabla session_state.
// El payload se guarda como texto tal cual llega, igual que un almacenamiento clave/valor.
type SessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository construye el adaptador de persistencia de sesión.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Load obtiene el registro de la llave.
func (r *SessionRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := r.pool.QueryRow(ctx, `SELECT payload FROM session_state WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	return []byte(payload), nil
}

// Save inserta o reemplaza el registro.
func (r *SessionRepo) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO session_state (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, key, string(data)); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Delete borra el registro; ErrSessionNotFound si no existía.
func (r *SessionRepo) Delete(ctx context.Context, key string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM session_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}
