package commands

import (
	"context"
)

// RemoveOrderCommandHandler handles order deletion.
// The state check and the delete run in the same read-committed transaction;
// a confirmation committed after the read is not detected.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order deletion operations.
func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Orders that have progressed past pending and are not cancelled are refused;
// line items are removed together with the order.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	loaded, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = loaded.EnsureRemovable(); err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
