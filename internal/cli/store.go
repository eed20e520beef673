package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/redisstore"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/session"
	"github.com/jhoicas/inventory-admin/pkg/config"
	"github.com/jhoicas/inventory-admin/pkg/logger"
)

// OpenSessionStore construye el almacén según SESSION_STORE.
func OpenSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, fmt.Errorf("conectar a Redis: %w", err)
		}
		log.Debug().Str("addr", cfg.Redis.Addr).Msg("sesión en redis")
		return redisstore.New(client), func() { _ = client.Close() }, nil

	case config.SessionStorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Debug().Msg("sesión en postgres")
		return postgres.NewSessionRepository(pool), pool.Close, nil

	default:
		log.Debug().Str("file", cfg.Session.File).Msg("sesión en archivo")
		return session.NewFileStore(cfg.Session.File, cfg.Session.Key), func() {}, nil
	}
}
