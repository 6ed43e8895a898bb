// Package productrepo reads the product catalog table. Catalog maintenance happens
// elsewhere; the back-office only counts rows.
package productrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO mirrors the catalog's products table.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	Image     string          `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time       `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default "product_dtos".
func (ProductDTO) TableName() string {
	return "products"
}
