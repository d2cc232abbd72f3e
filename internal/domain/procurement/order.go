package procurement

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/procure/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of a purchase order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a known lifecycle state
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanReceive reports whether receipts may be recorded against an order
// in this state.
func (s OrderStatus) CanReceive() bool {
	return s == OrderStatusCompleted
}

// ParseTargetStatus normalizes a requested status update. Only the two
// terminal states are valid targets.
func ParseTargetStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(raw))
	if s != OrderStatusCompleted && s != OrderStatusCancelled {
		return "", shared.NewInvalidInput(fmt.Sprintf("Invalid status %s", raw))
	}
	return s, nil
}

// PurchaseOrderItem is a single line of a purchase order
type PurchaseOrderItem struct {
	ID              int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	PurchaseOrderID int64           `json:"purchase_order_id" gorm:"not null;index"`
	ItemID          int64           `json:"item_id" gorm:"not null;index"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:decimal(18,4);not null"`
}

// TableName specifies the table name for PurchaseOrderItem
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// LineTotal returns quantity times unit price.
func (i PurchaseOrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PurchaseOrder is an order placed with a supplier. TotalAmount is
// fixed at creation; Items never change after creation.
type PurchaseOrder struct {
	ID          int64               `json:"id" gorm:"primaryKey;autoIncrement"`
	SupplierID  int64               `json:"supplier_id" gorm:"not null;index"`
	OrderDate   time.Time           `json:"order_date" gorm:"not null"`
	Status      OrderStatus         `json:"status" gorm:"type:varchar(20);not null;index"`
	TotalAmount decimal.Decimal     `json:"total_amount" gorm:"type:decimal(18,4);not null"`
	UpdatedDate *time.Time          `json:"updated_date"`
	Items       []PurchaseOrderItem `json:"items" gorm:"foreignKey:PurchaseOrderID"`
}

// TableName specifies the table name for PurchaseOrder
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// OrderLine carries validated input for one purchase order line.
type OrderLine struct {
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewPurchaseOrder assembles a pending order from validated lines and
// computes the order total. Referential checks (supplier and item
// existence) belong to the caller; this enforces structural rules only.
func NewPurchaseOrder(supplierID int64, lines []OrderLine) (*PurchaseOrder, error) {
	if len(lines) == 0 {
		return nil, shared.NewInvalidInput("The orderItems array must contain at least one item.")
	}
	if supplierID <= 0 {
		return nil, shared.NewInvalidInput("Invalid supplier ID.")
	}
	if dup := duplicateItemIDs(lineItemIDs(lines)); len(dup) > 0 {
		return nil, shared.NewInvalidInput(fmt.Sprintf("Duplicate items found: %s.", joinIDs(dup)))
	}

	var msgs []string
	for _, line := range lines {
		if line.Quantity <= 0 {
			msgs = append(msgs, fmt.Sprintf("Quantity for item %d must be greater than zero.", line.ItemID))
		}
		if line.UnitPrice.IsNegative() {
			msgs = append(msgs, fmt.Sprintf("Unit price for item %d cannot be negative.", line.ItemID))
		}
	}
	if len(msgs) > 0 {
		return nil, shared.NewInvalidInput(msgs...)
	}

	order := &PurchaseOrder{
		SupplierID:  supplierID,
		OrderDate:   time.Now(),
		Status:      OrderStatusPending,
		TotalAmount: decimal.Zero,
	}
	for _, line := range lines {
		item := PurchaseOrderItem{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		order.TotalAmount = order.TotalAmount.Add(item.LineTotal())
		order.Items = append(order.Items, item)
	}
	return order, nil
}

// TransitionTo moves a pending order into a terminal state and stamps
// the update time. Orders never leave a terminal state.
func (o *PurchaseOrder) TransitionTo(target OrderStatus) error {
	if !target.IsTerminal() {
		return shared.NewInvalidInput(fmt.Sprintf("Invalid status %s", target))
	}
	if o.Status != OrderStatusPending {
		return shared.NewNotFound(fmt.Sprintf(
			"Purchase Order with ID %d is already %s. Only pending orders can be updated.", o.ID, o.Status))
	}
	now := time.Now().UTC()
	o.Status = target
	o.UpdatedDate = &now
	return nil
}

// LineForItem returns the order line for an item, or nil when the item
// is not part of the order.
func (o *PurchaseOrder) LineForItem(itemID int64) *PurchaseOrderItem {
	for i := range o.Items {
		if o.Items[i].ItemID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}

func lineItemIDs(lines []OrderLine) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}
	return ids
}

// duplicateItemIDs returns, in first-seen order, every id that occurs
// more than once.
func duplicateItemIDs(ids []int64) []int64 {
	seen := make(map[int64]int, len(ids))
	var dup []int64
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			dup = append(dup, id)
		}
	}
	return dup
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}
