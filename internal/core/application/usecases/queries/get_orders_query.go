package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a filtered, paginated page of orders.
// Order number and customer reference filters match substrings; the status
// filter is exact and must name a known status.
//
// Example:
//
//	query, err := NewGetOrdersQuery("", "acme", "pending", 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	page, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Data), page.Total)
type GetOrdersQuery struct {
	orderNumber string
	customerRef string
	status      string
	pagination  Pagination

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query over the order listing. Empty filter
// values are ignored; page and limit are normalized.
func NewGetOrdersQuery(
	orderNumber string, customerRef string, status string, page int, limit int,
) (GetOrdersQuery, error) {
	if status != "" {
		if err := order.Status(status).Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		orderNumber: orderNumber,
		customerRef: customerRef,
		status:      status,
		pagination:  NewPagination(page, limit),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderNumber returns the order number substring filter, empty when unset.
func (q GetOrdersQuery) OrderNumber() string {
	return q.orderNumber
}

// CustomerRef returns the customer reference substring filter, empty when unset.
func (q GetOrdersQuery) CustomerRef() string {
	return q.customerRef
}

// Status returns the exact status filter, empty when unset.
func (q GetOrdersQuery) Status() string {
	return q.status
}

// Pagination returns the normalized page request.
func (q GetOrdersQuery) Pagination() Pagination {
	return q.pagination
}

// OrderItemResponse is one order line joined with its product labels.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ProductSKU  string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// OrderResponse represents one order for read endpoints.
type OrderResponse struct {
	ID          kernel.UUID
	OrderNumber string
	CustomerRef string
	Status      string
	TotalAmount decimal.Decimal
	Version     int
	CreatedAt   time.Time
	Items       []OrderItemResponse
}

// GetOrdersQueryResponse is the page envelope for order listings.
type GetOrdersQueryResponse struct {
	Data       []OrderResponse
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
