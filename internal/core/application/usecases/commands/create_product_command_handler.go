package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalog product registration.
// SKU uniqueness is enforced by the database; a collision surfaces as a
// duplicate key conflict.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command and returns the created product.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context, cmd CreateProductCommand,
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

	newProduct, err := product.NewProduct(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.SKU(),
		cmd.Price(),
		cmd.InventoryCount(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newProduct, nil
}
