package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerRefIsRequired   = errors.New("customerRef is required")
	ErrItemsAreRequired        = errors.New("order requires at least one item")
	ErrItemQuantityIsInvalid   = errors.New("item quantity must be greater than 0")
	ErrIdempotencyKeyIsInvalid = errors.New("idempotencyKey must not be empty when provided")
)

// CreateOrderItem describes one requested order line: which product and how many
// units. Prices are not part of the request; they are snapshotted at creation time.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the customer reference, an optional idempotency key for
// duplicate-submission protection, and the requested line items.
//
// Example:
//
//	key := "req-42"
//	cmd, err := NewCreateOrderCommand("customer-1", &key, []CreateOrderItem{
//	    {ProductID: productID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerRef    string
	idempotencyKey *string
	items          []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer reference is present, every line item names a
// valid product and a positive quantity, and the idempotency key, when
// provided, is not empty.
func NewCreateOrderCommand(
	customerRef string, idempotencyKey *string, items []CreateOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerRef(customerRef),
		orderCommand.setIdempotencyKey(idempotencyKey),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerRef returns the customer reference the order is placed for.
func (c CreateOrderCommand) CustomerRef() string {
	return c.customerRef
}

// IdempotencyKey returns the optional deduplication key, nil when absent.
func (c CreateOrderCommand) IdempotencyKey() *string {
	return c.idempotencyKey
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return ErrCustomerRefIsRequired
	}

	c.customerRef = customerRef
	return nil
}

func (c *CreateOrderCommand) setIdempotencyKey(idempotencyKey *string) error {
	if idempotencyKey != nil && *idempotencyKey == "" {
		return ErrIdempotencyKeyIsInvalid
	}

	c.idempotencyKey = idempotencyKey
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
