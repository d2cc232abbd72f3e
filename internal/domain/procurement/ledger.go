package procurement

import (
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// TransactionType classifies a stock movement in the item ledger
type TransactionType string

const (
	// TransactionTypePurchaseReceipt marks stock received against a
	// purchase order.
	TransactionTypePurchaseReceipt TransactionType = "PurchaseReceipt"
)

// ItemLedger is one append-only stock movement. The on-hand quantity of
// an item always equals the sum of its ledger quantities.
type ItemLedger struct {
	ID              int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	ItemID          int64           `json:"item_id" gorm:"not null;index"`
	TransactionType TransactionType `json:"transaction_type" gorm:"type:varchar(50);not null"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"not null"`
}

// TableName specifies the table name for ItemLedger
func (ItemLedger) TableName() string {
	return "item_ledgers"
}

// NewReceiptLedgerEntry records stock received for one receipt line.
func NewReceiptLedgerEntry(itemID int64, quantity int, at time.Time) (*ItemLedger, error) {
	if quantity <= 0 {
		return nil, shared.NewInvalidInput("Ledger quantity must be greater than zero.")
	}
	return &ItemLedger{
		ItemID:          itemID,
		TransactionType: TransactionTypePurchaseReceipt,
		Quantity:        quantity,
		TransactionDate: at,
	}, nil
}
