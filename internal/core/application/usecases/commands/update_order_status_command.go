package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order through its
// lifecycle. Carries the caller's role since cancellation is restricted to
// managers, and the loaded version for optimistic fencing.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	role    kernel.Role
	version int

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order's status.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID, status order.Status, role kernel.Role, version int,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
		statusCommand.setRole(role),
		statusCommand.setVersion(version),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Role returns the role of the caller requesting the transition.
func (c UpdateOrderStatusCommand) Role() kernel.Role {
	return c.role
}

// Version returns the version the caller loaded.
func (c UpdateOrderStatusCommand) Version() int {
	return c.version
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateOrderStatusCommand) setVersion(version int) error {
	if version <= 0 {
		return ErrVersionIsInvalid
	}

	c.version = version
	return nil
}
