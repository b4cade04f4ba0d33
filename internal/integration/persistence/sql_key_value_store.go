package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taxometer/backend/internal/application/adapter"
	"github.com/taxometer/backend/internal/integration/persistence/model"
)

// sqlKeyValueStore implements the adapter.KeyValueStore interface on a SQL table.
type sqlKeyValueStore struct {
	db *gorm.DB
}

// NewSQLKeyValueStore creates a new gorm-backed key/value store.
// The key_values table must already exist (see MigrateKeyValues).
func NewSQLKeyValueStore(db *gorm.DB) adapter.KeyValueStore {
	return &sqlKeyValueStore{
		db: db,
	}
}

// MigrateKeyValues creates or updates the key_values table.
func MigrateKeyValues(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.KeyValueModel{}); err != nil {
		return fmt.Errorf("failed to migrate key_values: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var kv model.KeyValueModel
	result := s.db.WithContext(ctx).Where("storage_key = ?", key).First(&kv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, result.Error
	}
	return kv.Value, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	kv := model.KeyValueModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv)
	return result.Error
}

// Ping checks that the database is reachable.
func (s *sqlKeyValueStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
