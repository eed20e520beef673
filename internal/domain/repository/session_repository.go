package repository

import (
	"context"
	"errors"
)

// ErrSessionNotFound lo devuelve Load cuando la llave no existe.
var ErrSessionNotFound = errors.New("sesión no encontrada")

// SessionStore persiste el registro serializado del usuario bajo una llave fija.
// Es el equivalente del almacenamiento local del navegador.
type SessionStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
