package procurement

import (
	"fmt"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// PurchaseReceiptItem records the received quantity for one item on a
// receipt
type PurchaseReceiptItem struct {
	ID                int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	PurchaseReceiptID int64 `json:"purchase_receipt_id" gorm:"not null;index"`
	ItemID            int64 `json:"item_id" gorm:"not null;index"`
	ReceivedQuantity  int   `json:"received_quantity" gorm:"not null"`
}

// TableName specifies the table name for PurchaseReceiptItem
func (PurchaseReceiptItem) TableName() string {
	return "purchase_receipt_items"
}

// PurchaseReceipt records a delivery against a completed purchase
// order. Receipts are append-only; they are never updated or deleted.
type PurchaseReceipt struct {
	ID              int64                 `json:"id" gorm:"primaryKey;autoIncrement"`
	PurchaseOrderID int64                 `json:"purchase_order_id" gorm:"not null;index"`
	ReceiptDate     time.Time             `json:"receipt_date" gorm:"not null"`
	Items           []PurchaseReceiptItem `json:"items" gorm:"foreignKey:PurchaseReceiptID"`
}

// TableName specifies the table name for PurchaseReceipt
func (PurchaseReceipt) TableName() string {
	return "purchase_receipts"
}

// ReceiptLine carries validated input for one receipt line.
type ReceiptLine struct {
	ItemID           int64
	ReceivedQuantity int
}

// NewPurchaseReceipt assembles a receipt from structural validation of
// the lines. Checks against the order and its prior receipts belong to
// the caller.
func NewPurchaseReceipt(orderID int64, lines []ReceiptLine) (*PurchaseReceipt, error) {
	if len(lines) == 0 {
		return nil, shared.NewInvalidInput("The receiptItems array must contain at least one item.")
	}
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}
	if dup := duplicateItemIDs(ids); len(dup) > 0 {
		return nil, shared.NewInvalidInput(fmt.Sprintf("Duplicate items found: %s.", joinIDs(dup)))
	}

	var msgs []string
	for _, line := range lines {
		if line.ReceivedQuantity <= 0 {
			msgs = append(msgs, fmt.Sprintf("Received quantity for item %d must be greater than zero.", line.ItemID))
		}
	}
	if len(msgs) > 0 {
		return nil, shared.NewInvalidInput(msgs...)
	}

	receipt := &PurchaseReceipt{
		PurchaseOrderID: orderID,
		ReceiptDate:     time.Now(),
	}
	for _, line := range lines {
		receipt.Items = append(receipt.Items, PurchaseReceiptItem{
			ItemID:           line.ItemID,
			ReceivedQuantity: line.ReceivedQuantity,
		})
	}
	return receipt, nil
}

// ReceivedByItem accumulates received quantities per item across a
// receipt history.
func ReceivedByItem(receipts []PurchaseReceipt) map[int64]int {
	totals := make(map[int64]int)
	for _, receipt := range receipts {
		for _, item := range receipt.Items {
			totals[item.ItemID] += item.ReceivedQuantity
		}
	}
	return totals
}
