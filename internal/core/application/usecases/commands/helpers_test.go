package commands_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// catalogProduct builds a persisted-looking product fixture.
func catalogProduct(t *testing.T, price string, inventoryCount int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(),
		"Widget",
		"SKU-"+kernel.NewUUID().String()[:8],
		decimal.RequireFromString(price),
		inventoryCount,
	)
	require.NoError(t, err)
	return p
}

// orderFixture builds an order in the given status with a single line item
// referencing the product.
func orderFixture(t *testing.T, status order.Status, forProduct *product.Product, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), forProduct.ID(), quantity, forProduct.Price())
	require.NoError(t, err)

	fixture, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		"customer-1",
		nil,
		status,
		item.Subtotal(),
		1,
		[]*order.Item{item},
	)
	require.NoError(t, err)
	return fixture
}
