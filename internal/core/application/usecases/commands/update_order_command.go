package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrVersionIsInvalid = errors.New("version must be greater than 0")
)

// UpdateOrderCommand represents a request to change an order's customer
// reference. Carries the version the caller loaded so concurrent edits are
// detected instead of silently overwritten. A nil customerRef leaves the
// reference as is; the order still goes through the version-fenced write.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerRef *string
	version     int

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's customer reference.
func NewUpdateOrderCommand(orderID kernel.UUID, customerRef *string, version int) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerRef(customerRef),
		orderCommand.setVersion(version),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerRef returns the new customer reference, nil when unchanged.
func (c UpdateOrderCommand) CustomerRef() *string {
	return c.customerRef
}

// Version returns the version the caller loaded.
func (c UpdateOrderCommand) Version() int {
	return c.version
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerRef(customerRef *string) error {
	if customerRef == nil {
		return nil
	}
	if *customerRef == "" {
		return ErrCustomerRefIsRequired
	}

	c.customerRef = customerRef
	return nil
}

func (c *UpdateOrderCommand) setVersion(version int) error {
	if version <= 0 {
		return ErrVersionIsInvalid
	}

	c.version = version
	return nil
}
