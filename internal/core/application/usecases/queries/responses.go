package queries

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// UserResponse is the read model of a user.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// NewUserResponse maps a user to its read model.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt(),
	}
}

// OrderResponse is the read model of an order with its items and full history.
//
// Example:
//
//	resp := NewOrderResponse(o)
//	fmt.Printf("%s: %s, total %s, %d items\n",
//	    resp.ID, resp.Status, resp.TotalAmount.StringFixed(2), len(resp.Items))
type OrderResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	Status        string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	Items         []OrderItemResponse
	StatusHistory []StatusChangeResponse
}

type OrderItemResponse struct {
	ID          kernel.UUID
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

type StatusChangeResponse struct {
	Status    string
	ChangedAt time.Time
}

// NewOrderResponse maps an order aggregate to its read model. Items keep their
// insertion order and history stays oldest first.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:          item.ID(),
			ProductName: item.ProductName(),
			Price:       item.Price(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}

	history := make([]StatusChangeResponse, 0, len(o.StatusHistory()))
	for _, change := range o.StatusHistory() {
		history = append(history, StatusChangeResponse{
			Status:    change.Status().String(),
			ChangedAt: change.ChangedAt(),
		})
	}

	return OrderResponse{
		ID:            o.ID(),
		UserID:        o.UserID(),
		Status:        o.Status().String(),
		TotalAmount:   o.TotalAmount(),
		CreatedAt:     o.CreatedAt(),
		Items:         items,
		StatusHistory: history,
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
