package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// GormPurchaseReceiptRepository implements procurement.PurchaseReceiptRepository using GORM
type GormPurchaseReceiptRepository struct {
	db *gorm.DB
}

// NewGormPurchaseReceiptRepository creates a new GormPurchaseReceiptRepository
func NewGormPurchaseReceiptRepository(db *gorm.DB) *GormPurchaseReceiptRepository {
	return &GormPurchaseReceiptRepository{db: db}
}

// FindByID finds a purchase receipt with its lines
func (r *GormPurchaseReceiptRepository) FindByID(ctx context.Context, id int64) (*procurement.PurchaseReceipt, error) {
	var receipt procurement.PurchaseReceipt
	if err := r.db.WithContext(ctx).Preload("Items").First(&receipt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFound("Purchase Receipt ID not found.")
		}
		return nil, err
	}
	return &receipt, nil
}

// FindByOrder returns the full receipt history of an order, oldest
// first. Receipt validation sums these quantities, so the read must
// see every receipt committed for the order.
func (r *GormPurchaseReceiptRepository) FindByOrder(ctx context.Context, orderID int64) ([]procurement.PurchaseReceipt, error) {
	var receipts []procurement.PurchaseReceipt
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("purchase_order_id = ?", orderID).
		Order("id ASC").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

// Create inserts the receipt together with its lines
func (r *GormPurchaseReceiptRepository) Create(ctx context.Context, receipt *procurement.PurchaseReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}
