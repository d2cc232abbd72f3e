package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// GormPurchaseOrderRepository implements procurement.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order with its lines.
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id int64) (*procurement.PurchaseOrder, error) {
	var order procurement.PurchaseOrder
	query := r.db.WithContext(ctx).Preload("Items")
	if err := query.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFound("Purchase order not found.")
		}
		return nil, err
	}
	return &order, nil
}

// FindAll returns a page of orders with their lines
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	var orders []procurement.PurchaseOrder
	query := applyFilter(r.db.WithContext(ctx).Model(&procurement.PurchaseOrder{}), filter,
		[]string{"id", "order_date", "status", "supplier_id"})
	if err := query.Preload("Items").Offset(filter.Offset()).Limit(filter.Limit()).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the number of orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWhere(r.db.WithContext(ctx).Model(&procurement.PurchaseOrder{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts the order together with its lines. Line rows pick up
// the generated order id through the association.
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, order *procurement.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// UpdateStatus persists a status transition and its update timestamp
// without touching the lines.
func (r *GormPurchaseOrderRepository) UpdateStatus(ctx context.Context, order *procurement.PurchaseOrder) error {
	result := r.db.WithContext(ctx).
		Model(&procurement.PurchaseOrder{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":       order.Status,
			"updated_date": order.UpdatedDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound("Purchase order not found.")
	}
	return nil
}
