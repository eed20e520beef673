// Package session implementa almacenes locales para el registro de sesión:
// un archivo JSON por llave (equivalente al almacenamiento local del navegador) y uno en memoria.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/inventory-admin/internal/domain/repository"
)

var _ repository.SessionStore = (*FileStore)(nil)

// FileStore guarda cada llave en un archivo. Con una sola llave configurada, Path es el archivo;
// otras llaves se guardan junto a él como <dir>/<key>.json.
type FileStore struct {
	path string
	key  string
	mu   sync.Mutex
}

// NewFileStore construye el almacén. defaultKey se mapea exactamente a path.
func NewFileStore(path, defaultKey string) *FileStore {
	return &FileStore{path: path, key: defaultKey}
}

func (s *FileStore) fileFor(key string) string {
	if key == s.key {
		return s.path
	}
	return filepath.Join(filepath.Dir(s.path), key+".json")
}

// Load lee el registro; ErrSessionNotFound si el archivo no existe.
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.fileFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	return data, nil
}

// Save escribe el registro de forma atómica (archivo temporal + rename).
func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.fileFor(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".session-*")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar sesión: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("permisos de sesión: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Delete borra el archivo; ErrSessionNotFound si no existía.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.fileFor(key)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.ErrSessionNotFound
		}
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
