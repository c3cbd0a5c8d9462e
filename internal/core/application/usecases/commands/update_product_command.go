package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrNoProductChangesRequested = errors.New("at least one product field must change")
)

// UpdateProductCommand represents a partial catalog update.
// Nil fields are left untouched; the version fences the write against
// concurrent editors.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	name           *string
	sku            *string
	price          *decimal.Decimal
	status         *product.Status
	inventoryCount *int
	version        int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
// At least one field must be provided.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name *string,
	sku *string,
	price *decimal.Decimal,
	status *product.Status,
	inventoryCount *int,
	version int,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setChanges(name, sku, price, status, inventoryCount),
		productCommand.setVersion(version),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new display name, nil when unchanged.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// SKU returns the new stock keeping unit, nil when unchanged.
func (c UpdateProductCommand) SKU() *string {
	return c.sku
}

// Price returns the new price, nil when unchanged.
func (c UpdateProductCommand) Price() *decimal.Decimal {
	return c.price
}

// Status returns the new catalog status, nil when unchanged.
func (c UpdateProductCommand) Status() *product.Status {
	return c.status
}

// InventoryCount returns the new stock level, nil when unchanged.
func (c UpdateProductCommand) InventoryCount() *int {
	return c.inventoryCount
}

// Version returns the version the caller loaded.
func (c UpdateProductCommand) Version() int {
	return c.version
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setChanges(
	name *string, sku *string, price *decimal.Decimal, status *product.Status, inventoryCount *int,
) error {
	if name == nil && sku == nil && price == nil && status == nil && inventoryCount == nil {
		return ErrNoProductChangesRequested
	}

	if name != nil && *name == "" {
		return ErrProductNameIsRequired
	}
	if sku != nil && *sku == "" {
		return ErrProductSKUIsRequired
	}
	if price != nil && price.IsNegative() {
		return ErrProductPriceIsInvalid
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if inventoryCount != nil && *inventoryCount < 0 {
		return ErrInventoryCountIsInvalid
	}

	c.name = name
	c.sku = sku
	c.price = price
	c.status = status
	c.inventoryCount = inventoryCount
	return nil
}

func (c *UpdateProductCommand) setVersion(version int) error {
	if version <= 0 {
		return ErrVersionIsInvalid
	}

	c.version = version
	return nil
}
