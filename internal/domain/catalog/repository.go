package catalog

import (
	"context"

	"github.com/procure/backend/internal/domain/shared"
)

// ItemRepository defines the persistence interface for items
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id int64) error

	// IncrementStock applies an atomic in-place adjustment to the
	// on-hand quantity, never a read-modify-write of a loaded row.
	IncrementStock(ctx context.Context, id int64, delta int) error
}

// SupplierRepository defines the persistence interface for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id int64) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id int64) error

	// ExistsByEmail and ExistsByPhone compare case-insensitively and
	// ignore the row identified by excludeID when it is non-zero.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
}
