// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders and their line items are written as one aggregate;
// line items cascade-delete with the order and restrict product deletion.
package orderrepo

import (
	"time"

	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order number and idempotency key carry named unique constraints so that
// violation errors can be attributed to the right column; the nullable
// idempotency key permits any number of orders without a key.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber    string          `gorm:"uniqueIndex:uq_orders_order_number"`
	IdempotencyKey *string         `gorm:"uniqueIndex:uq_orders_idempotency_key"`
	CustomerRef    string          `gorm:"index"`
	Status         string          `gorm:"type:varchar(16);index"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Version        int             `gorm:"not null;default:1"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line item.
// The product association restricts product deletion while references exist.
type ItemDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID               `gorm:"type:uuid;index"`
	ProductID uuid.UUID               `gorm:"type:uuid;index"`
	Quantity  int                     `gorm:"not null"`
	UnitPrice decimal.Decimal         `gorm:"type:decimal(10,2)"`
	Subtotal  decimal.Decimal         `gorm:"type:decimal(12,2)"`
	Product   *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate with its items to database rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderNumber:    aggregate.OrderNumber(),
		IdempotencyKey: aggregate.IdempotencyKey(),
		CustomerRef:    aggregate.CustomerRef(),
		Status:         string(aggregate.Status()),
		TotalAmount:    aggregate.TotalAmount(),
		Version:        aggregate.Version(),
		Items:          items,
	}
}

// toDomain converts database rows back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewItem(itemID, productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CustomerRef,
		dto.IdempotencyKey,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.Version,
		items,
	)
}
