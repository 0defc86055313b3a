package rdb

import (
	"context"
	"errors"

	"github.com/gridpad/gridpad/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Backend is a GORM-backed implementation of domain.Backend.
type Backend struct {
	db *gorm.DB
}

func NewBackend(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec SlotRecord
	if err := b.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	rec := &SlotRecord{Key: key, Value: value}
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(rec).Error
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Delete(&SlotRecord{}, "key = ?", key).Error
}

// Ensure interface satisfaction.
var _ domain.Backend = (*Backend)(nil)
