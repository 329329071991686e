package http

import (
	"time"

	"shop/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// JSON shapes of api/openapi.json. Money travels as decimal strings.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateOrderRequest struct {
	UserID uuid.UUID `json:"userId"`
}

type AddItemRequest struct {
	ProductName string `json:"productName"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"productName"`
	Price       string    `json:"price"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
}

type StatusChange struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

type Order struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"userId"`
	Status        string         `json:"status"`
	TotalAmount   string         `json:"totalAmount"`
	CreatedAt     time.Time      `json:"createdAt"`
	Items         []OrderItem    `json:"items"`
	StatusHistory []StatusChange `json:"statusHistory"`
}

func newUser(u queries.UserResponse) User {
	return User{
		ID:        u.ID.Bytes(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func newUsers(users []queries.UserResponse) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, newUser(u))
	}
	return out
}

func newOrder(o queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			ID:          item.ID.Bytes(),
			ProductName: item.ProductName,
			Price:       item.Price.String(),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal.String(),
		})
	}

	history := make([]StatusChange, 0, len(o.StatusHistory))
	for _, change := range o.StatusHistory {
		history = append(history, StatusChange{
			Status:    change.Status,
			ChangedAt: change.ChangedAt,
		})
	}

	return Order{
		ID:            o.ID.Bytes(),
		UserID:        o.UserID.Bytes(),
		Status:        o.Status,
		TotalAmount:   o.TotalAmount.String(),
		CreatedAt:     o.CreatedAt,
		Items:         items,
		StatusHistory: history,
	}
}

func newOrders(orders []queries.OrderResponse) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrder(o))
	}
	return out
}
