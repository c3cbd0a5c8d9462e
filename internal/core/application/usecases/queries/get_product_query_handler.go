package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler fetches one catalog product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no product has
// the requested id.
func (h GetProductQueryHandler) Handle(
	ctx context.Context, query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var productResp ProductResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sku,
			price,
			status,
			inventory_count,
			version,
			created_at
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(
		&id,
		&productResp.Name,
		&productResp.SKU,
		&productResp.Price,
		&productResp.Status,
		&productResp.InventoryCount,
		&productResp.Version,
		&productResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	if err != nil {
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	productResp.ID = productID

	return productResp, nil
}
