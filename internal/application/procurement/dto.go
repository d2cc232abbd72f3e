package procurement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/procure/backend/internal/domain/procurement"
)

// CreateOrderRequest is the input for creating a purchase order
type CreateOrderRequest struct {
	SupplierID int64              `json:"supplier_id"`
	OrderItems []OrderItemRequest `json:"order_items"`
}

// OrderItemRequest is one requested purchase order line
type OrderItemRequest struct {
	ItemID    int64           `json:"item_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateOrderResponse reports the persisted order id and total
type CreateOrderResponse struct {
	PurchaseOrderID int64           `json:"purchase_order_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// UpdateOrderStatusRequest is the input for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is one purchase order line
type OrderItemResponse struct {
	ItemID    int64           `json:"item_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse is the read model of a purchase order
type OrderResponse struct {
	ID          int64               `json:"id"`
	SupplierID  int64               `json:"supplier_id"`
	OrderDate   time.Time           `json:"order_date"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	UpdatedDate *time.Time          `json:"updated_date,omitempty"`
	Items       []OrderItemResponse `json:"items"`
}

// ToOrderResponse maps a purchase order to its read model.
func ToOrderResponse(order *procurement.PurchaseOrder) *OrderResponse {
	resp := &OrderResponse{
		ID:          order.ID,
		SupplierID:  order.SupplierID,
		OrderDate:   order.OrderDate,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		UpdatedDate: order.UpdatedDate,
		Items:       make([]OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return resp
}

// CreateReceiptRequest is the input for recording a purchase receipt
type CreateReceiptRequest struct {
	PurchaseOrderID int64                `json:"purchase_order_id"`
	ReceiptItems    []ReceiptItemRequest `json:"receipt_items"`
}

// ReceiptItemRequest is one requested receipt line
type ReceiptItemRequest struct {
	ItemID           int64 `json:"item_id" binding:"required"`
	ReceivedQuantity int   `json:"received_quantity" binding:"required,gt=0"`
}

// CreateReceiptResponse reports the persisted receipt id
type CreateReceiptResponse struct {
	PurchaseReceiptID int64 `json:"purchase_receipt_id"`
}

// ReceiptItemResponse is one receipt line with its item name resolved
type ReceiptItemResponse struct {
	ItemID           int64  `json:"item_id"`
	ItemName         string `json:"item_name"`
	ReceivedQuantity int    `json:"received_quantity"`
}

// ReceiptResponse is the read model of a purchase receipt
type ReceiptResponse struct {
	ID              int64                 `json:"id"`
	PurchaseOrderID int64                 `json:"purchase_order_id"`
	ReceiptDate     time.Time             `json:"receipt_date"`
	ReceiptItems    []ReceiptItemResponse `json:"receipt_items"`
}

// LedgerEntryResponse is the read model of one stock movement
type LedgerEntryResponse struct {
	ID              int64     `json:"id"`
	ItemID          int64     `json:"item_id"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int       `json:"quantity"`
	TransactionDate time.Time `json:"transaction_date"`
}
