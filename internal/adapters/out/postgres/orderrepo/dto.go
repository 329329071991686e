// Package orderrepo maps order aggregates to three tables: the order header,
// its items and its status history. Child rows carry their position in the
// aggregate so reloads keep insertion order even when timestamps tie.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table.
type OrderDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Status      string            `gorm:"type:varchar(16);not null;index"`
	TotalAmount decimal.Decimal   `gorm:"type:numeric;not null"`
	CreatedAt   time.Time         `gorm:"not null;index"`
	Items       []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History     []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by gorm.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one row of order_items.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName overrides the table name used by gorm.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one row of order_status_history.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Status    string    `gorm:"type:varchar(16);not null"`
	ChangedAt time.Time `gorm:"not null"`
}

// TableName overrides the table name used by gorm.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			Position:    i,
			ProductName: item.ProductName(),
			Price:       item.Price(),
			Quantity:    item.Quantity(),
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.StatusHistory()))
	for i, change := range aggregate.StatusHistory() {
		history = append(history, StatusChangeDTO{
			ID:        change.ID().Bytes(),
			OrderID:   orderID,
			Position:  i,
			Status:    change.Status().String(),
			ChangedAt: change.ChangedAt(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		UserID:      aggregate.UserID().Bytes(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		Items:       items,
		History:     history,
	}
}

// toDomain rehydrates through the Restore constructors so no history entry is
// appended and nothing is re-validated. Items and History must already be
// sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]*order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		change, changeErr := statusChangeToDomain(id, changeDTO)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	return order.RestoreOrder(id, userID, status, dto.TotalAmount, dto.CreatedAt.UTC(), items, history), nil
}

func itemToDomain(orderID kernel.UUID, dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, dto.ProductName, dto.Price, dto.Quantity), nil
}

func statusChangeToDomain(orderID kernel.UUID, dto StatusChangeDTO) (*order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreStatusChange(id, orderID, status, dto.ChangedAt.UTC()), nil
}
