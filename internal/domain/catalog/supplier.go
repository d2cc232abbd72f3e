package catalog

import (
	"github.com/procure/backend/internal/domain/shared"
)

// Supplier is a party purchase orders are placed with. Email and phone
// are unique across suppliers, compared case-insensitively.
type Supplier struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"type:varchar(100);not null"`
	Email   string `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone   string `json:"phone" gorm:"type:varchar(30);not null;uniqueIndex"`
	Address string `json:"address" gorm:"type:varchar(255)"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a supplier with validated fields.
func NewSupplier(name, email, phone, address string) (*Supplier, error) {
	var msgs []string
	if name == "" {
		msgs = append(msgs, "Supplier name is required.")
	}
	if email == "" {
		msgs = append(msgs, "Supplier email is required.")
	}
	if phone == "" {
		msgs = append(msgs, "Supplier phone number is required.")
	}
	if len(msgs) > 0 {
		return nil, shared.NewInvalidInput(msgs...)
	}
	return &Supplier{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}, nil
}

// Apply overwrites fields from an update; nil pointers leave the
// current value untouched.
func (s *Supplier) Apply(name, email, phone, address *string) {
	if name != nil {
		s.Name = *name
	}
	if email != nil {
		s.Email = *email
	}
	if phone != nil {
		s.Phone = *phone
	}
	if address != nil {
		s.Address = *address
	}
}

// ErrSupplierNotFound is the canonical missing-supplier error.
func ErrSupplierNotFound() *shared.DomainError {
	return shared.NewNotFound("Supplier ID not found.")
}
