package order

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle engine. It owns its line
// items as a composition: items are created atomically with the order, never
// mutated individually, and removed together with the order.
//
// Order maintains these invariants:
//   - At least one line item, each referencing an existing product
//   - Total amount equals the sum of line subtotals
//   - Status changes follow the transition table in this package
//   - Cancellation requires the manager capability
//   - Version starts at 1 and increments on every persisted mutation
type Order struct {
	id             kernel.UUID
	orderNumber    string
	idempotencyKey *string
	customerRef    string
	status         Status
	totalAmount    decimal.Decimal
	version        int
	items          []*Item

	isConstructed bool
}

// NewOrder creates a pending order from its line items.
// The total amount is computed from the item subtotals; idempotencyKey may be
// nil when the caller did not request deduplication.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerRef string,
	idempotencyKey *string,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerRef(customerRef),
		o.setIdempotencyKey(idempotencyKey),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
// The stored total amount is trusted; status and version come from storage.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerRef string,
	idempotencyKey *string,
	status Status,
	totalAmount decimal.Decimal,
	version int,
	items []*Item,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}

	o := &Order{
		status:        status,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerRef(customerRef),
		o.setIdempotencyKey(idempotencyKey),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount.Round(2)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the generated human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// IdempotencyKey returns the client-supplied deduplication key, or nil.
func (o *Order) IdempotencyKey() *string {
	return o.idempotencyKey
}

// CustomerRef returns the customer reference.
func (o *Order) CustomerRef() string {
	return o.customerRef
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of line subtotals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Version returns the optimistic-lock version last loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// Items returns the order's line items.
// The returned slice is a copy; items themselves are immutable.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// ChangeStatus applies a status transition requested by a caller with the
// given role. It enforces the transition table and the manager-only
// cancellation rule; inventory side effects are orchestrated by the caller
// within the same transaction.
func (o *Order) ChangeStatus(target Status, role kernel.Role) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if target == StatusCancelled && !role.CanCancelOrders() {
		return errs.NewForbiddenError(role.String(), "cancel orders")
	}

	o.status = newStatus
	return nil
}

// ChangeCustomerRef edits the customer reference.
func (o *Order) ChangeCustomerRef(customerRef string) error {
	if err := o.EnsureEditable(); err != nil {
		return err
	}

	return o.setCustomerRef(customerRef)
}

// EnsureEditable checks that plain field edits are still permitted.
// Edits are allowed only while the order is pending.
func (o *Order) EnsureEditable() error {
	if o.status != StatusPending {
		return errs.NewInvalidStateError("update", string(o.status))
	}

	return nil
}

// EnsureRemovable checks that the order may be hard-deleted.
// Only pending and cancelled orders can be removed.
func (o *Order) EnsureRemovable() error {
	if o.status != StatusPending && o.status != StatusCancelled {
		return errs.NewInvalidStateError("delete", string(o.status))
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return errs.NewValueIsRequiredError("customerRef")
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setIdempotencyKey(key *string) error {
	if key != nil && *key == "" {
		return errs.NewValueIsInvalidErrorWithCause("idempotencyKey", errors.New("key must not be empty when supplied"))
	}
	o.idempotencyKey = key
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	o.totalAmount = total.Round(2)
	return nil
}
