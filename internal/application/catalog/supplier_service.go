package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// SupplierService handles supplier business operations
type SupplierService struct {
	suppliers catalog.SupplierRepository
	logger    *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(suppliers catalog.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{suppliers: suppliers, logger: logger}
}

// Create registers a supplier. Email and phone uniqueness failures are
// reported together in one error.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := catalog.NewSupplier(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, &req.Email, &req.Phone, 0); err != nil {
		return nil, err
	}

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier created", zap.Int64("supplier_id", supplier.ID))
	return ToSupplierResponse(supplier), nil
}

// GetByID returns one supplier.
func (s *SupplierService) GetByID(ctx context.Context, id int64) (*SupplierResponse, error) {
	if id <= 0 {
		return nil, shared.NewInvalidInput("Invalid supplier ID.")
	}
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// Update applies a partial update after re-checking uniqueness for any
// changed contact field.
func (s *SupplierService) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (*SupplierResponse, error) {
	if id <= 0 {
		return nil, shared.NewInvalidInput("Invalid supplier ID.")
	}
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, req.Email, req.Phone, id); err != nil {
		return nil, err
	}

	supplier.Apply(req.Name, req.Email, req.Phone, req.Address)
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier updated", zap.Int64("supplier_id", supplier.ID))
	return ToSupplierResponse(supplier), nil
}

// Delete removes a supplier.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.NewInvalidInput("Invalid supplier ID.")
	}
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("supplier deleted", zap.Int64("supplier_id", id))
	return nil
}

// List returns a page of suppliers.
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SupplierResponse], error) {
	suppliers, err := s.suppliers.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.suppliers.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, *ToSupplierResponse(&suppliers[i]))
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// checkUniqueness collects every conflicting contact field so callers
// see all failures at once. Nil or empty fields are skipped.
func (s *SupplierService) checkUniqueness(ctx context.Context, email, phone *string, excludeID int64) error {
	var msgs []string

	if email != nil && *email != "" {
		exists, err := s.suppliers.ExistsByEmail(ctx, *email, excludeID)
		if err != nil {
			return err
		}
		if exists {
			msgs = append(msgs, "Email already registered")
		}
	}
	if phone != nil && *phone != "" {
		exists, err := s.suppliers.ExistsByPhone(ctx, *phone, excludeID)
		if err != nil {
			return err
		}
		if exists {
			msgs = append(msgs, "Phone number already registered")
		}
	}

	if len(msgs) > 0 {
		return shared.NewInvalidInput(msgs...)
	}
	return nil
}
