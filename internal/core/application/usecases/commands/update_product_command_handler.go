package commands

import (
	"context"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// UpdateProductCommandHandler handles partial catalog updates.
// Writes are fenced by the version the caller loaded; a SKU change races the
// unique constraint, which reports the conflict as a duplicate key.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product update operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command and returns the updated product.
func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context, cmd UpdateProductCommand,
) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	loaded, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if loaded.Version() != cmd.Version() {
		return nil, errs.NewVersionConflictError("product", cmd.Version(), loaded.Version())
	}

	if err = applyProductChanges(loaded, cmd); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, loaded); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.uowFactory.Create().ProductRepository().Get(ctx, cmd.ProductID())
}

func applyProductChanges(loaded *product.Product, cmd UpdateProductCommand) error {
	if cmd.Name() != nil {
		if err := loaded.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.SKU() != nil {
		if err := loaded.RelabelSKU(*cmd.SKU()); err != nil {
			return err
		}
	}
	if cmd.Price() != nil {
		if err := loaded.Reprice(*cmd.Price()); err != nil {
			return err
		}
	}
	if cmd.Status() != nil {
		if err := loaded.SetStatus(*cmd.Status()); err != nil {
			return err
		}
	}
	if cmd.InventoryCount() != nil {
		if err := loaded.SetInventoryCount(*cmd.InventoryCount()); err != nil {
			return err
		}
	}

	return nil
}
