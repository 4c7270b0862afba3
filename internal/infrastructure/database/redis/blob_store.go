// internal/infrastructure/database/redis/blob_store.go
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

// BlobStore persists store snapshots as plain Redis strings with no expiry
type BlobStore struct {
	client *redis.Client
	prefix string
}

// NewBlobStore creates a blob store namespacing every key with prefix
func NewBlobStore(client *redis.Client, prefix string) *BlobStore {
	return &BlobStore{
		client: client,
		prefix: prefix,
	}
}

// Load retrieves the blob stored under key
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, persistence.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	return data, nil
}

// Save stores data under key
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Health pings the server
func (s *BlobStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
