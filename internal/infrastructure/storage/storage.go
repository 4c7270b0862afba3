// internal/infrastructure/storage/storage.go
package storage

import (
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

// Backend is the persistence adapter selected by STORAGE_BACKEND together
// with the connections it owns
type Backend struct {
	Adapter persistence.Adapter
	// Redis is set only for the redis backend
	Redis   *goredis.Client
	closers []func() error
}

// Open connects the configured storage backend
func Open(cfg *config.Config, log *logrus.Logger) (*Backend, error) {
	b := &Backend{}

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		log.Warn("Using in-memory storage; state is lost on restart")
		b.Adapter = persistence.NewMemory()

	case config.StorageFile:
		store, err := persistence.NewFile(cfg.Storage.FileDir)
		if err != nil {
			return nil, err
		}
		log.WithField("dir", cfg.Storage.FileDir).Info("Using file storage")
		b.Adapter = store

	case config.StorageRedis:
		client, err := redis.NewConnection(cfg, log)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, client.Close)
		b.Redis = client.GetClient()
		b.Adapter = redis.NewBlobStore(client.GetClient(), cfg.Redis.KeyPrefix)

	case config.StoragePostgres:
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, db.Close)

		if err := postgres.NewMigration(db.GetDB(), log).RunAutoMigrations(); err != nil {
			b.Close()
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		b.Adapter = postgres.NewBlobStore(db.GetDB())

	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}

	return b, nil
}

// Close releases every connection the backend opened
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	b.closers = nil
	return errors.Join(errs...)
}
