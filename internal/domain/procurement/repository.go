package procurement

import (
	"context"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the persistence interface for
// purchase orders. Reads always load the order's line items.
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id int64) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, order *PurchaseOrder) error
	UpdateStatus(ctx context.Context, order *PurchaseOrder) error
}

// PurchaseReceiptRepository defines the persistence interface for
// purchase receipts. Receipts are append-only.
type PurchaseReceiptRepository interface {
	FindByID(ctx context.Context, id int64) (*PurchaseReceipt, error)
	FindByOrder(ctx context.Context, orderID int64) ([]PurchaseReceipt, error)
	Create(ctx context.Context, receipt *PurchaseReceipt) error
}

// ItemLedgerRepository defines the persistence interface for the
// append-only stock movement ledger.
type ItemLedgerRepository interface {
	CreateBatch(ctx context.Context, entries []ItemLedger) error
	FindByItem(ctx context.Context, itemID int64) ([]ItemLedger, error)
}

// TxRepositories exposes the repositories bound to one datastore
// transaction.
type TxRepositories interface {
	Orders() PurchaseOrderRepository
	Receipts() PurchaseReceiptRepository
	Ledger() ItemLedgerRepository
	Items() catalog.ItemRepository
	Suppliers() catalog.SupplierRepository
}

// UnitOfWork runs fn inside a single datastore transaction. A non-nil
// error from fn rolls everything back; no partial state survives.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(tx TxRepositories) error) error
}

// OrderLocker serializes receipt creation per purchase order. Lock
// blocks until the order's scope is free or ctx is done, and returns
// the release function for the acquired scope.
type OrderLocker interface {
	Lock(ctx context.Context, orderID int64) (release func(), err error)
}
