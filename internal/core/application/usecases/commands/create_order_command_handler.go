package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates the referenced products, snapshots their current prices into the
// line items and persists the pending order in a single transaction.
//
// When the command carries an idempotency key that has already been used, the
// handler returns the previously created order instead of an error, making
// retried submissions safe.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory since creation touches both catalog and order storage.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
// Product prices are captured at this moment; later catalog changes do not
// affect the stored line items.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := h.loadProducts(ctx, uow, cmd.Items())
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		lineProduct := products[requested.ProductID.String()]
		item, itemErr := order.NewItem(kernel.NewUUID(), requested.ProductID, requested.Quantity, lineProduct.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		cmd.CustomerRef(),
		cmd.IdempotencyKey(),
		items,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		if existing, resolved := h.resolveDuplicateKey(ctx, uow, cmd, err); resolved {
			return existing, nil
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// loadProducts fetches every referenced product, failing with the complete list
// of missing identifiers when any reference is dangling.
func (h *CreateOrderCommandHandler) loadProducts(
	ctx context.Context, uow UoW, items []CreateOrderItem,
) (map[string]*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID.String()] {
			seen[item.ProductID.String()] = true
			ids = append(ids, item.ProductID)
		}
	}

	found, err := uow.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*product.Product, len(found))
	for _, p := range found {
		products[p.ID().String()] = p
	}

	var missing []string
	for _, id := range ids {
		if _, ok := products[id.String()]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, errs.NewProductsNotFoundError(missing)
	}

	return products, nil
}

// resolveDuplicateKey turns a violated idempotency-key constraint into the
// order already stored under that key. The failed transaction is rolled back
// first; the lookup runs on a fresh unit of work.
func (h *CreateOrderCommandHandler) resolveDuplicateKey(
	ctx context.Context, uow UoW, cmd CreateOrderCommand, addErr error,
) (*order.Order, bool) {
	if cmd.IdempotencyKey() == nil {
		return nil, false
	}

	var dupErr *errs.DuplicateKeyError
	if !errors.As(addErr, &dupErr) || dupErr.ParamName != "idempotencyKey" {
		return nil, false
	}

	_ = uow.Rollback(ctx)

	existing, err := h.uowFactory.Create().OrderRepository().
		GetByIdempotencyKey(ctx, *cmd.IdempotencyKey())
	if err != nil {
		return nil, false
	}

	return existing, true
}
