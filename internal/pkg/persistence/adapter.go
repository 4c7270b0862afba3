// internal/pkg/persistence/adapter.go
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("persistence: key not found")
	ErrMalformed = errors.New("persistence: malformed blob")
)

// Adapter is the key-value blob store the state stores mirror themselves into.
// Load returns ErrNotFound when nothing has been saved under key.
type Adapter interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// HealthChecker is implemented by adapters backed by a remote service
type HealthChecker interface {
	Health(ctx context.Context) error
}

// LoadJSON decodes the blob stored under key into dst
func LoadJSON(ctx context.Context, a Adapter, key string, dst interface{}) error {
	data, err := a.Load(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}

	return nil
}

// SaveJSON encodes v and stores it under key
func SaveJSON(ctx context.Context, a Adapter, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := a.Save(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}
