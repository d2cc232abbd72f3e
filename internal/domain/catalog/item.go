package catalog

import (
	"fmt"

	"github.com/procure/backend/internal/domain/shared"
)

// Item is a stocked product. Quantity is the on-hand stock and is only
// ever changed through ledger-backed movements.
type Item struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"type:varchar(200);not null"`
	Description string `json:"description" gorm:"type:varchar(500)"`
	Category    string `json:"category" gorm:"type:varchar(100)"`
	Quantity    int    `json:"quantity" gorm:"not null;default:0"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}

// NewItem creates an item with validated fields.
func NewItem(name, description, category string, quantity int) (*Item, error) {
	var msgs []string
	if name == "" {
		msgs = append(msgs, "Item name is required.")
	}
	if quantity < 0 {
		msgs = append(msgs, "Item quantity cannot be negative.")
	}
	if len(msgs) > 0 {
		return nil, shared.NewInvalidInput(msgs...)
	}
	return &Item{
		Name:        name,
		Description: description,
		Category:    category,
		Quantity:    quantity,
	}, nil
}

// ErrItemNotFound builds the canonical missing-item error for an ID.
func ErrItemNotFound(id int64) *shared.DomainError {
	return shared.NewNotFound(fmt.Sprintf("Item with ID %d not found.", id))
}
