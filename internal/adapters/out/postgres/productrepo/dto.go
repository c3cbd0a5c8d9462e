// Package productrepo provides data transfer objects and mapping functions for
// product persistence, including the inventory ledger columns that order
// transitions reserve against.
package productrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// The version column fences concurrent writers; the SKU carries a named unique
// constraint so violation errors can be attributed precisely.
type ProductDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"index"`
	SKU            string          `gorm:"uniqueIndex:uq_products_sku"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status         string          `gorm:"type:varchar(16);index"`
	InventoryCount int             `gorm:"not null;default:0"`
	Version        int             `gorm:"not null;default:1"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		SKU:            aggregate.SKU(),
		Price:          aggregate.Price(),
		Status:         string(aggregate.Status()),
		InventoryCount: aggregate.InventoryCount(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database row back to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.SKU,
		dto.Price,
		product.Status(dto.Status),
		dto.InventoryCount,
		dto.Version,
	)
}
