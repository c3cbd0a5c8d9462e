package productrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
// All statements run on the injected db handle, which is the unit of work's
// transaction when one is active.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
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

// foreignKeyViolation reports whether err is a Postgres foreign key violation.
func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := uniqueViolation(err); ok {
			return errs.NewDuplicateKeyErrorWithCause("sku", aggregate.SKU(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves catalog changes using a compare-and-swap on the version column.
// The update applies only when the stored version still equals the version the
// aggregate was loaded with, and increments it by one in the same statement.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"name":            dto.Name,
			"sku":             dto.SKU,
			"price":           dto.Price,
			"status":          dto.Status,
			"inventory_count": dto.InventoryCount,
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		if _, ok := uniqueViolation(result.Error); ok {
			return errs.NewDuplicateKeyErrorWithCause("sku", aggregate.SKU(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedWrite(ctx, aggregate.ID(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves all products matching the given IDs.
// IDs without a matching row are absent from the result.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// GetBySKU retrieves a product by its SKU.
func (r *GormProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", sku)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove hard-deletes a product. The restricting foreign key from order items
// is the backstop for races with concurrent order creation.
func (r *GormProductRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if foreignKeyViolation(result.Error) {
			return errs.NewProductInUseError(id.String(), 0)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// Reserve decrements available inventory only when the stored count covers the
// quantity. The check and the decrement are one conditional statement, so two
// concurrent confirmations against the same product serialize on the row and
// cannot both succeed when only one is covered.
func (r *GormProductRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND inventory_count >= ?", id.Bytes(), quantity).
		Updates(map[string]any{
			"inventory_count": gorm.Expr("inventory_count - ?", quantity),
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto ProductDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("product", id.String())
			}
			return err
		}
		return errs.NewInsufficientInventoryError(id.String(), quantity, dto.InventoryCount)
	}

	return nil
}

// Release increments available inventory unconditionally (restock path).
func (r *GormProductRepository) Release(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"inventory_count": gorm.Expr("inventory_count + ?", quantity),
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// classifyMissedWrite distinguishes a vanished row from a stale version after
// a fenced update touched zero rows.
func (r *GormProductRepository) classifyMissedWrite(ctx context.Context, id kernel.UUID, supplied int) error {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		return err
	}

	return errs.NewVersionConflictError("product", supplied, dto.Version)
}
