package order

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is one product/quantity entry within an order. The unit price is a
// snapshot of the product's price at order-creation time and is immune to later
// catalog price changes. Items are fixed at creation and never individually
// mutated afterward; they live and die with their owning order.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal

	isConstructed bool
}

// NewItem creates a line item with the given snapshot unit price.
// The subtotal is computed as quantity times unit price, rounded to two decimals.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}

	unitPrice = unitPrice.Round(2)

	return &Item{
		id:            id,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot captured at order creation.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i *Item) Subtotal() decimal.Decimal {
	return i.subtotal
}
