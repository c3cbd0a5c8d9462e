package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles customer reference updates on orders.
// The change is only legal while the order is still pending and is fenced by
// the version the caller loaded.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	loaded, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if loaded.Version() != cmd.Version() {
		return nil, errs.NewVersionConflictError("order", cmd.Version(), loaded.Version())
	}

	if ref := cmd.CustomerRef(); ref != nil {
		if err = loaded.ChangeCustomerRef(*ref); err != nil {
			return nil, err
		}
	} else if err = loaded.EnsureEditable(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, loaded); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
}
