package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// GormSupplierRepository implements catalog.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id int64) (*catalog.Supplier, error) {
	var supplier catalog.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrSupplierNotFound()
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll returns a page of suppliers
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Supplier, error) {
	var suppliers []catalog.Supplier
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Supplier{}), filter, []string{"id", "name", "email"})
	if err := query.Offset(filter.Offset()).Limit(filter.Limit()).Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Count returns the number of suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWhere(r.db.WithContext(ctx).Model(&catalog.Supplier{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *catalog.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes a supplier by ID
func (r *GormSupplierRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrSupplierNotFound()
	}
	return nil
}

// ExistsByEmail reports whether another supplier already uses the email
func (r *GormSupplierRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Supplier{}).
		Where("LOWER(email) = LOWER(?)", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByPhone reports whether another supplier already uses the phone
func (r *GormSupplierRepository) ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Supplier{}).
		Where("LOWER(phone) = LOWER(?)", phone)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
