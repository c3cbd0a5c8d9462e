package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler pages through catalog products directly against the
// database, sorted newest first.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the listing query and returns one page of products with
// the total match count.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context, query GetProductsQuery,
) (GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return GetProductsQueryResponse{}, err
	}

	pagination := query.Pagination()
	response := GetProductsQueryResponse{
		Data:       make([]ProductResponse, 0),
		Total:      total,
		Page:       pagination.Page(),
		Limit:      pagination.Limit(),
		TotalPages: pagination.TotalPages(total),
	}

	rows, err := h.filtered(ctx, query).
		Select("id, name, sku, price, status, inventory_count, version, created_at").
		Order("created_at DESC").
		Limit(pagination.Limit()).
		Offset(pagination.Offset()).
		Rows()
	if err != nil {
		return GetProductsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp ProductResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&productResp.Name,
			&productResp.SKU,
			&productResp.Price,
			&productResp.Status,
			&productResp.InventoryCount,
			&productResp.Version,
			&productResp.CreatedAt,
		)
		if err != nil {
			return GetProductsQueryResponse{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetProductsQueryResponse{}, idErr
		}
		productResp.ID = productID

		response.Data = append(response.Data, productResp)
	}
	if err = rows.Err(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	return response, nil
}

func (h GetProductsQueryHandler) filtered(ctx context.Context, query GetProductsQuery) *gorm.DB {
	scope := h.db.WithContext(ctx).Table("products")
	if query.Name() != "" {
		scope = scope.Where("name ILIKE ?", "%"+query.Name()+"%")
	}
	if query.SKU() != "" {
		scope = scope.Where("sku ILIKE ?", "%"+query.SKU()+"%")
	}
	if query.Status() != "" {
		scope = scope.Where("status = ?", query.Status())
	}
	return scope
}
