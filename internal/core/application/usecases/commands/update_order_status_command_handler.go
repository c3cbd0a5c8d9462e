package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler drives orders through their lifecycle.
// Confirming an order reserves inventory for every line item; cancelling a
// confirmed order releases it again. The status change and the inventory
// movements commit or fail as one transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory since transitions can touch both order and inventory state.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command and returns the updated order.
//
// Inventory rules per transition:
//   - entering confirmed: reserve every line quantity, all or nothing
//   - confirmed -> cancelled: release every line quantity
//   - pending -> cancelled and all other transitions: no inventory movement
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	previous := loaded.Status()
	if err = loaded.ChangeStatus(cmd.Status(), cmd.Role()); err != nil {
		return nil, err
	}

	if err = h.moveInventory(ctx, uow, loaded, previous); err != nil {
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

// moveInventory applies the ledger side of the transition within the open
// transaction. A failed reservation aborts the whole transition.
func (h *UpdateOrderStatusCommandHandler) moveInventory(
	ctx context.Context, uow UoW, changed *order.Order, previous order.Status,
) error {
	productRepo := uow.ProductRepository()

	switch {
	case changed.Status() == order.StatusConfirmed:
		for _, item := range changed.Items() {
			if err := productRepo.Reserve(ctx, item.ProductID(), item.Quantity()); err != nil {
				return err
			}
		}
	case changed.Status() == order.StatusCancelled && previous == order.StatusConfirmed:
		for _, item := range changed.Items() {
			if err := productRepo.Release(ctx, item.ProductID(), item.Quantity()); err != nil {
				return err
			}
		}
	}

	return nil
}
