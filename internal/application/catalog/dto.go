package catalog

import (
	"github.com/procure/backend/internal/domain/catalog"
)

// CreateItemRequest is the input for creating an item
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity" binding:"gte=0"`
}

// ItemResponse is the read model of an item
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
}

// ToItemResponse maps an item to its read model.
func ToItemResponse(item *catalog.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Quantity:    item.Quantity,
	}
}

// CreateSupplierRequest is the input for creating a supplier
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

// UpdateSupplierRequest carries a partial supplier update; nil fields
// are left unchanged
type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// SupplierResponse is the read model of a supplier
type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToSupplierResponse maps a supplier to its read model.
func ToSupplierResponse(supplier *catalog.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Email:   supplier.Email,
		Phone:   supplier.Phone,
		Address: supplier.Address,
	}
}
