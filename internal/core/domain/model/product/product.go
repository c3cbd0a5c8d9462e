package product

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through NewProduct or RestoreProduct. This ensures all products are validated.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is the catalog aggregate. Besides its catalog attributes it owns the
// available inventory count that order confirmation reserves against.
//
// Product maintains these invariants:
//   - Name and SKU are non-empty; SKU is unique across the catalog (enforced by storage)
//   - Price is a non-negative fixed-point amount with two decimals
//   - Inventory count is never negative
//   - Version starts at 1 and increments on every persisted mutation,
//     including inventory reservation and release
type Product struct {
	id             kernel.UUID
	name           string
	sku            string
	price          decimal.Decimal
	status         Status
	inventoryCount int
	version        int

	isConstructed bool
}

// NewProduct creates a product in active status with version 1.
// All catalog invariants are validated; the price is normalized to two decimals.
func NewProduct(id kernel.UUID, name string, sku string, price decimal.Decimal, inventoryCount int) (*Product, error) {
	p := &Product{
		status:        StatusActive,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setPrice(price),
		p.setInventoryCount(inventoryCount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
// Unlike NewProduct it accepts the stored status and version.
func RestoreProduct(
	id kernel.UUID,
	name string,
	sku string,
	price decimal.Decimal,
	status Status,
	inventoryCount int,
	version int,
) (*Product, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}

	p := &Product{
		status:        status,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setPrice(price),
		p.setInventoryCount(inventoryCount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// SKU returns the product's stock keeping unit.
func (p *Product) SKU() string {
	return p.sku
}

// Price returns the current catalog price.
// Orders snapshot this price into their line items at creation time.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Status returns the catalog availability status.
func (p *Product) Status() Status {
	return p.status
}

// InventoryCount returns the currently available inventory.
func (p *Product) InventoryCount() int {
	return p.inventoryCount
}

// Version returns the optimistic-lock version last loaded from storage.
func (p *Product) Version() int {
	return p.version
}

// Rename changes the product's display name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// RelabelSKU changes the product's SKU.
// Storage enforces uniqueness; a conflicting SKU surfaces as a DuplicateKey error on commit.
func (p *Product) RelabelSKU(sku string) error {
	return p.setSKU(sku)
}

// Reprice changes the catalog price. Existing order items keep their snapshot.
func (p *Product) Reprice(price decimal.Decimal) error {
	return p.setPrice(price)
}

// SetStatus changes the catalog availability status.
func (p *Product) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}

// SetInventoryCount overwrites the available inventory with a restock count.
// Reservation and release during order transitions bypass this method and run
// as conditional updates inside the owning transaction.
func (p *Product) SetInventoryCount(count int) error {
	return p.setInventoryCount(count)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price.Round(2)
	return nil
}

func (p *Product) setInventoryCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("inventoryCount", fmt.Errorf("%d is negative", count))
	}
	p.inventoryCount = count
	return nil
}
