// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Implements the repository pattern for the order
// aggregate, handling conversion between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed for the common access paths: listing by status and
// by customer. The Version column backs optimistic concurrency control;
// DeletedAt backs soft deletion.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount int64
	Status      int `gorm:"index"`
	Version     int64
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database. Rows are removed
// together with their order through the cascading foreign key.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Name     string    `gorm:"size:255"`
	Quantity int
	Price    int64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	var deletedAt gorm.DeletedAt
	if d := aggregate.DeletedAt(); d != nil {
		deletedAt = gorm.DeletedAt{Time: *d, Valid: true}
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		TotalAmount: aggregate.TotalAmount(),
		Status:      int(aggregate.Status()),
		Version:     aggregate.Version(),
		Items:       items,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		DeletedAt:   deletedAt,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder. Items are mapped only when they were loaded; a DTO fetched
// without preloading yields an aggregate without items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var items []*order.OrderItem
	if len(dto.Items) > 0 {
		items = make([]*order.OrderItem, 0, len(dto.Items))
		for _, itemDTO := range dto.Items {
			item, itemErr := itemToDomain(itemDTO)
			if itemErr != nil {
				return nil, itemErr
			}
			items = append(items, item)
		}
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		deletedAt = &dto.DeletedAt.Time
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.TotalAmount,
		order.Status(dto.Status),
		items,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
		deletedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(id, orderID, dto.Name, dto.Quantity, dto.Price)
}
