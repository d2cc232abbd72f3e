package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/procurement"
)

// GormItemLedgerRepository implements procurement.ItemLedgerRepository using GORM
type GormItemLedgerRepository struct {
	db *gorm.DB
}

// NewGormItemLedgerRepository creates a new GormItemLedgerRepository
func NewGormItemLedgerRepository(db *gorm.DB) *GormItemLedgerRepository {
	return &GormItemLedgerRepository{db: db}
}

// CreateBatch appends ledger entries in one insert
func (r *GormItemLedgerRepository) CreateBatch(ctx context.Context, entries []procurement.ItemLedger) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

// FindByItem returns an item's movement history, oldest first
func (r *GormItemLedgerRepository) FindByItem(ctx context.Context, itemID int64) ([]procurement.ItemLedger, error) {
	var entries []procurement.ItemLedger
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
