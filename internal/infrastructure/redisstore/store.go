// Package redisstore guarda el registro de sesión en Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventory-admin/internal/domain/repository"
)

const (
	defaultTimeout = 5 * time.Second
	keyPrefix      = "inventory:session:"
)

var _ repository.SessionStore = (*Store)(nil)

// Config parámetros de conexión a Redis.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect crea el cliente y valida la conexión con un ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Store implementa repository.SessionStore. Las llaves no expiran.
type Store struct {
	client redis.Cmdable
}

// New envuelve un cliente (o pipeline) de Redis.
func New(client redis.Cmdable) *Store {
	return &Store{client: client}
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	n, err := s.client.Del(ctx, s.key(key)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}

func (s *Store) key(k string) string { return keyPrefix + k }
