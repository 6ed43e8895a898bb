package productrepo

import (
	"context"

	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductCatalog using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

var _ ports.ProductCatalog = (*GormProductRepository)(nil)

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Count returns the number of products in the catalog.
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&count).Error; err != nil {
		return 0, errs.NewStoreUnavailableErrorWithCause("products", err)
	}

	return count, nil
}
