// Package ports defines the persistence contracts between the order engine
// and its storage adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates,
// including the inventory ledger operations used by order status transitions.
type ProductRepository interface {
	// Add persists a new product. A SKU collision surfaces as a DuplicateKey error.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists catalog changes, fenced by the aggregate's loaded version.
	// A stale version yields a VersionConflict error; on success the stored
	// version increments by exactly one.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products matching the given identifiers.
	// Missing identifiers are simply absent from the result; validation of
	// completeness is the caller's concern.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetBySKU retrieves a product by SKU, used for uniqueness pre-checks.
	GetBySKU(ctx context.Context, sku string) (*product.Product, error)

	// Remove hard-deletes a product. Products referenced by order items are
	// protected by a restricting foreign key.
	Remove(ctx context.Context, id kernel.UUID) error

	// Reserve atomically decrements available inventory when the count covers
	// the quantity, incrementing the product version. Runs within the
	// repository's bound transaction; an insufficient count yields an
	// InsufficientInventory error and no change.
	Reserve(ctx context.Context, id kernel.UUID, quantity int) error

	// Release increments available inventory unconditionally (restock on
	// cancellation), incrementing the product version. Runs within the
	// repository's bound transaction.
	Release(ctx context.Context, id kernel.UUID, quantity int) error
}
