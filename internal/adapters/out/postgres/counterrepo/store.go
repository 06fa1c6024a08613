// Package counterrepo implements a Postgres counter store using GORM.
// Deployments that want counters to survive host loss point the counter
// backend at Postgres instead of the flat-file store.
package counterrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quickcommerce/internal/core/ports"
)

var _ ports.CounterStore = (*Store)(nil)

// CounterDTO represents the database structure for persisting counters.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// Store persists counters in a Postgres table, one row per counter.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Postgres counter store over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the counters table when it does not exist yet.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&CounterDTO{})
}

// Load reads the counter named name.
// A missing row yields defaultValue without error.
func (s *Store) Load(ctx context.Context, name string, defaultValue int64) (int64, error) {
	var dto CounterDTO
	err := s.db.WithContext(ctx).First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultValue, nil
		}
		return defaultValue, fmt.Errorf("load counter %s: %w", name, err)
	}

	return dto.Value, nil
}

// Save upserts the counter named name.
func (s *Store) Save(ctx context.Context, name string, value int64) error {
	dto := CounterDTO{Name: name, Value: value}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&dto).Error
	if err != nil {
		return fmt.Errorf("save counter %s: %w", name, err)
	}

	return nil
}
