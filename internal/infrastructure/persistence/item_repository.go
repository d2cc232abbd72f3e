package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound(id)
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns a page of items
func (r *GormItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Item, error) {
	var items []catalog.Item
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Item{}), filter, []string{"id", "name", "category"})
	if err := query.Offset(filter.Offset()).Limit(filter.Limit()).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of items matching the filter
func (r *GormItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWhere(r.db.WithContext(ctx).Model(&catalog.Item{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item by ID
func (r *GormItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrItemNotFound(id)
	}
	return nil
}

// IncrementStock adjusts the on-hand quantity in place. The update is
// a single SQL expression so concurrent increments never lose writes.
func (r *GormItemRepository) IncrementStock(ctx context.Context, id int64, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrItemNotFound(id)
	}
	return nil
}
