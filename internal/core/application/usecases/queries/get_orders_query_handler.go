package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler pages through orders directly against the database.
// Listings are sorted newest first; line items are hydrated in a second pass
// for the page that was actually selected.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns one page of orders with
// the total match count.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context, query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return GetOrdersQueryResponse{}, err
	}

	pagination := query.Pagination()
	response := GetOrdersQueryResponse{
		Data:       make([]OrderResponse, 0),
		Total:      total,
		Page:       pagination.Page(),
		Limit:      pagination.Limit(),
		TotalPages: pagination.TotalPages(total),
	}

	rows, err := h.filtered(ctx, query).
		Select("id, order_number, customer_ref, status, total_amount, version, created_at").
		Order("created_at DESC").
		Limit(pagination.Limit()).
		Offset(pagination.Offset()).
		Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	pageIDs := make([]uuid.UUID, 0, pagination.Limit())
	for rows.Next() {
		var orderResp OrderResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&orderResp.CustomerRef,
			&orderResp.Status,
			&orderResp.TotalAmount,
			&orderResp.Version,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetOrdersQueryResponse{}, idErr
		}
		orderResp.ID = orderID
		orderResp.Items = make([]OrderItemResponse, 0)

		pageIDs = append(pageIDs, id)
		response.Data = append(response.Data, orderResp)
	}
	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	if len(pageIDs) == 0 {
		return response, nil
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, pageIDs)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	for i := range response.Data {
		if lineItems, ok := itemsByOrder[response.Data[i].ID]; ok {
			response.Data[i].Items = lineItems
		}
	}

	return response, nil
}

func (h GetOrdersQueryHandler) filtered(ctx context.Context, query GetOrdersQuery) *gorm.DB {
	scope := h.db.WithContext(ctx).Table("orders")
	if query.OrderNumber() != "" {
		scope = scope.Where("order_number ILIKE ?", "%"+query.OrderNumber()+"%")
	}
	if query.CustomerRef() != "" {
		scope = scope.Where("customer_ref ILIKE ?", "%"+query.CustomerRef()+"%")
	}
	if query.Status() != "" {
		scope = scope.Where("status = ?", query.Status())
	}
	return scope
}

// loadOrderItems fetches the line items for the given orders joined with the
// product name and SKU, keyed by order id.
func loadOrderItems(
	ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID,
) (map[kernel.UUID][]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			i.product_id,
			i.quantity,
			i.unit_price,
			i.subtotal,
			p.name,
			p.sku
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id IN ?
		ORDER BY i.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[kernel.UUID][]OrderItemResponse)
	for rows.Next() {
		var itemResp OrderItemResponse
		var id, orderID, productID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&productID,
			&itemResp.Quantity,
			&itemResp.UnitPrice,
			&itemResp.Subtotal,
			&itemResp.ProductName,
			&itemResp.ProductSKU,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ProductID = lineProductID

		owner, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemsByOrder[owner] = append(itemsByOrder[owner], itemResp)
	}

	return itemsByOrder, rows.Err()
}
