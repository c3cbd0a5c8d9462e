package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves a filtered, paginated page of catalog products.
// Name and SKU filters match substrings; the status filter is exact.
type GetProductsQuery struct {
	name       string
	sku        string
	status     string
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query over the product listing. Empty filter
// values are ignored; page and limit are normalized.
func NewGetProductsQuery(
	name string, sku string, status string, page int, limit int,
) (GetProductsQuery, error) {
	if status != "" {
		if err := product.Status(status).Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}

	return GetProductsQuery{
		name:       name,
		sku:        sku,
		status:     status,
		pagination: NewPagination(page, limit),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Name returns the name substring filter, empty when unset.
func (q GetProductsQuery) Name() string {
	return q.name
}

// SKU returns the SKU substring filter, empty when unset.
func (q GetProductsQuery) SKU() string {
	return q.sku
}

// Status returns the exact status filter, empty when unset.
func (q GetProductsQuery) Status() string {
	return q.status
}

// Pagination returns the normalized page request.
func (q GetProductsQuery) Pagination() Pagination {
	return q.pagination
}

// ProductResponse represents one catalog product for read endpoints.
type ProductResponse struct {
	ID             kernel.UUID
	Name           string
	SKU            string
	Price          decimal.Decimal
	Status         string
	InventoryCount int
	Version        int
	CreatedAt      time.Time
}

// GetProductsQueryResponse is the page envelope for product listings.
type GetProductsQueryResponse struct {
	Data       []ProductResponse
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
