package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired    = errors.New("product name is required")
	ErrProductSKUIsRequired     = errors.New("product sku is required")
	ErrProductPriceIsInvalid    = errors.New("product price must not be negative")
	ErrInventoryCountIsInvalid  = errors.New("inventory count must not be negative")
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name           string
	sku            string
	price          decimal.Decimal
	inventoryCount int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new catalog product.
func NewCreateProductCommand(
	name string, sku string, price decimal.Decimal, inventoryCount int,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setName(name),
		productCommand.setSKU(sku),
		productCommand.setPrice(price),
		productCommand.setInventoryCount(inventoryCount),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the display name of the product.
func (c CreateProductCommand) Name() string {
	return c.name
}

// SKU returns the stock keeping unit identifier.
func (c CreateProductCommand) SKU() string {
	return c.sku
}

// Price returns the catalog price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// InventoryCount returns the initial stock level.
func (c CreateProductCommand) InventoryCount() int {
	return c.inventoryCount
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrProductSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setInventoryCount(count int) error {
	if count < 0 {
		return ErrInventoryCountIsInvalid
	}

	c.inventoryCount = count
	return nil
}
