package orderrepo

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// All statements run on the injected db handle, which is the unit of work's
// transaction when one is active.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// uniqueViolation reports whether err is a Postgres unique constraint
// violation, returning the violated constraint's name.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// Add saves a new order with its line items in one insert batch.
// A violated idempotency-key constraint is surfaced as a DuplicateKey error
// naming "idempotencyKey" so the creation use case can resolve it by re-reading.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if strings.Contains(constraint, "idempotency_key") {
				key := ""
				if aggregate.IdempotencyKey() != nil {
					key = *aggregate.IdempotencyKey()
				}
				return errs.NewDuplicateKeyErrorWithCause("idempotencyKey", key, err)
			}
			return errs.NewDuplicateKeyErrorWithCause("orderNumber", aggregate.OrderNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order's mutable columns using a compare-and-swap on the
// version column. Line items are immutable and are not touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"customer_ref": dto.CustomerRef,
			"status":       dto.Status,
			"total_amount": dto.TotalAmount,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedWrite(ctx, aggregate.ID(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIdempotencyKey retrieves the order persisted under the given key.
func (r *GormOrderRepository) GetByIdempotencyKey(ctx context.Context, key string) (*order.Order, error) {
	if key == "" {
		return nil, errs.NewValueIsRequiredError("idempotencyKey")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "idempotency_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("idempotencyKey", key)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove hard-deletes an order; the cascading foreign key removes its items.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// CountItemsForProduct reports how many line items reference the product.
func (r *GormOrderRepository) CountItemsForProduct(ctx context.Context, productID kernel.UUID) (int64, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// classifyMissedWrite distinguishes a vanished row from a stale version after
// a fenced update touched zero rows.
func (r *GormOrderRepository) classifyMissedWrite(ctx context.Context, id kernel.UUID, supplied int) error {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return err
	}

	return errs.NewVersionConflictError("order", supplied, dto.Version)
}
