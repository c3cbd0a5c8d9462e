package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders and their line items are always written and removed as a unit.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	// A duplicate idempotency key surfaces as a DuplicateKey error naming
	// "idempotencyKey", which the creation use case resolves by re-reading.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's mutable columns (status, customer reference,
	// total), fenced by the aggregate's loaded version. A stale version yields
	// a VersionConflict error; on success the stored version increments by one.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIdempotencyKey retrieves the order persisted under the given
	// idempotency key, used to resolve duplicate creation requests.
	GetByIdempotencyKey(ctx context.Context, key string) (*order.Order, error)

	// Remove hard-deletes an order; its line items are cascade-deleted.
	Remove(ctx context.Context, id kernel.UUID) error

	// CountItemsForProduct reports how many line items across all orders
	// reference the product. Used to refuse catalog deletions of referenced
	// products with a precise error before the foreign key would.
	CountItemsForProduct(ctx context.Context, productID kernel.UUID) (int64, error)
}
