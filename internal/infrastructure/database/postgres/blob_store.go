// internal/infrastructure/database/postgres/blob_store.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/storefront/internal/pkg/persistence"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is one persisted store snapshot
type Blob struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the table name
func (Blob) TableName() string {
	return "storefront_blobs"
}

// BlobStore persists store snapshots in the storefront_blobs table
type BlobStore struct {
	db *gorm.DB
}

// NewBlobStore creates a new blob store
func NewBlobStore(db *gorm.DB) *BlobStore {
	return &BlobStore{db: db}
}

// Load retrieves the blob stored under key
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob Blob
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistence.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to load blob %s: %w", key, err)
	}

	return blob.Value, nil
}

// Save upserts data under key
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	blob := Blob{
		Key:       key,
		Value:     data,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to save blob %s: %w", key, err)
	}

	return nil
}

// Health pings the database
func (s *BlobStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
