package http

import (
	"time"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerRef    string                   `json:"customerRef"`
	IdempotencyKey *string                  `json:"idempotencyKey,omitempty"`
	Items          []CreateOrderItemRequest `json:"items"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:id.
// A nil customerRef leaves the reference unchanged.
type UpdateOrderRequest struct {
	CustomerRef *string `json:"customerRef,omitempty"`
	Version     int     `json:"version"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
// The caller role arrives in the X-Role header, not the body.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status"`
	Version int    `json:"version"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Price          decimal.Decimal `json:"price"`
	InventoryCount int             `json:"inventoryCount"`
}

// UpdateProductRequest is the body of PATCH /api/v1/products/:id.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	SKU            *string          `json:"sku,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Status         *string          `json:"status,omitempty"`
	InventoryCount *int             `json:"inventoryCount,omitempty"`
	Version        int              `json:"version"`
}

// OrderItemResponse is one order line in API responses. The product name and
// SKU are joined from the catalog on every response, writes included.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductSKU  string          `json:"productSku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the order representation returned by all order endpoints.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"orderNumber"`
	CustomerRef string              `json:"customerRef"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Version     int                 `json:"version"`
	CreatedAt   time.Time           `json:"createdAt"`
	Items       []OrderItemResponse `json:"items"`
}

// OrdersPageResponse is the envelope of GET /api/v1/orders.
type OrdersPageResponse struct {
	Data       []OrderResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// ProductResponse is the product representation returned by all product endpoints.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	InventoryCount int             `json:"inventoryCount"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ProductsPageResponse is the envelope of GET /api/v1/products.
type ProductsPageResponse struct {
	Data       []ProductResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

func orderFromQuery(src queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(src.Items))
	for _, item := range src.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return OrderResponse{
		ID:          src.ID.String(),
		OrderNumber: src.OrderNumber,
		CustomerRef: src.CustomerRef,
		Status:      src.Status,
		TotalAmount: src.TotalAmount,
		Version:     src.Version,
		CreatedAt:   src.CreatedAt,
		Items:       items,
	}
}

func productFromQuery(src queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:             src.ID.String(),
		Name:           src.Name,
		SKU:            src.SKU,
		Price:          src.Price,
		Status:         src.Status,
		InventoryCount: src.InventoryCount,
		Version:        src.Version,
		CreatedAt:      src.CreatedAt,
	}
}
