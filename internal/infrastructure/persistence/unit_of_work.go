package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/procurement"
)

// GormUnitOfWork implements procurement.UnitOfWork using GORM
// transactions. Every repository handed to fn is bound to the same
// transaction, so a receipt, its ledger entries and the stock
// increments commit or roll back as one unit.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn inside a database transaction. An error from fn
// rolls the transaction back.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(repos procurement.TxRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepositories{tx: tx})
	})
}

// gormTxRepositories exposes transaction-scoped repositories.
type gormTxRepositories struct {
	tx *gorm.DB
}

func (r *gormTxRepositories) Orders() procurement.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

func (r *gormTxRepositories) Receipts() procurement.PurchaseReceiptRepository {
	return NewGormPurchaseReceiptRepository(r.tx)
}

func (r *gormTxRepositories) Ledger() procurement.ItemLedgerRepository {
	return NewGormItemLedgerRepository(r.tx)
}

func (r *gormTxRepositories) Items() catalog.ItemRepository {
	return NewGormItemRepository(r.tx)
}

func (r *gormTxRepositories) Suppliers() catalog.SupplierRepository {
	return NewGormSupplierRepository(r.tx)
}

// Ensure GormUnitOfWork implements procurement.UnitOfWork
var _ procurement.UnitOfWork = (*GormUnitOfWork)(nil)

// Ensure gormTxRepositories implements procurement.TxRepositories
var _ procurement.TxRepositories = (*gormTxRepositories)(nil)
