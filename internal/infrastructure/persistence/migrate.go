package persistence

import (
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/procurement"
)

// AutoMigrate creates or updates the schema for every persisted entity.
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&catalog.Item{},
		&catalog.Supplier{},
		&procurement.PurchaseOrder{},
		&procurement.PurchaseOrderItem{},
		&procurement.PurchaseReceipt{},
		&procurement.PurchaseReceiptItem{},
		&procurement.ItemLedger{},
	)
}
