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

// GetOrderQueryHandler fetches one order with its items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no order has
// the requested id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context, query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var orderResp OrderResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_ref,
			status,
			total_amount,
			version,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderResp.OrderNumber,
		&orderResp.CustomerRef,
		&orderResp.Status,
		&orderResp.TotalAmount,
		&orderResp.Version,
		&orderResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.ID = orderID
	orderResp.Items = make([]OrderItemResponse, 0)

	itemsByOrder, err := loadOrderItems(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return OrderResponse{}, err
	}
	if lineItems, ok := itemsByOrder[orderID]; ok {
		orderResp.Items = lineItems
	}

	return orderResp, nil
}
