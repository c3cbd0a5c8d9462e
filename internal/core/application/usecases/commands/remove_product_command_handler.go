package commands

import (
	"context"

	"warehouse/internal/pkg/errs"
)

// RemoveProductCommandHandler handles catalog product deletion.
// A product referenced by existing order items is refused with a precise
// conflict error; the restricting foreign key backs this check up at the
// database level.
type RemoveProductCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product deletion operations.
// Requires a UoWFactory since the reference check reads order storage.
func NewRemoveProductCommandHandler(uowFactory UoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product deletion command.
func (h *RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
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

	references, err := uow.OrderRepository().CountItemsForProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if references > 0 {
		return errs.NewProductInUseError(cmd.ProductID().String(), references)
	}

	if err = uow.ProductRepository().Remove(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
