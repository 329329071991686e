package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidAmount is returned when adding an item would leave the total negative.
	ErrInvalidAmount = errors.New("order total must not be negative")

	// ErrOrderNotFound is the cause of the not found error returned when an
	// order referenced by id does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// Order is the aggregate root of the ordering domain. It owns its items and its
// status history; both are only changed through the methods below.
//
// Order follows these invariants:
//   - total amount equals the sum of item subtotals and is never negative
//   - status history is non-empty, append-only and chronological
//   - the last history entry always carries the current status
//   - status changes only along the transitions defined by Status
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the owner of the order
	userID kernel.UUID

	// status is the current lifecycle state
	status Status

	// totalAmount is the running sum of item subtotals
	totalAmount decimal.Decimal

	// createdAt is when the order was placed
	createdAt time.Time

	// items in the order they were added
	items []*Item

	// history holds one entry per transition, oldest first
	history []*StatusChange

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder places a new order for the given user. The order starts in Created
// status with a zero total and a single Created history entry.
//
// Parameters:
//   - userID: Owner of the order (must be a valid UUID)
//
// Returns:
//   - *Order: The new order with a generated id and creation time
//   - error: Validation error if userID is invalid
//
// Example:
//
//	o, err := order.NewOrder(userID)
//	if err != nil {
//	    return err
//	}
//	if _, err := o.AddItem("widget", decimal.RequireFromString("9.99"), 3); err != nil {
//	    return err
//	}
//	err = o.Pay()
//
// The existence of the user is not checked here; callers that need it look
// the user up before placing the order.
func NewOrder(userID kernel.UUID) (*Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            kernel.NewUUID(),
		userID:        userID,
		totalAmount:   decimal.Zero,
		createdAt:     kernel.Now(),
		items:         make([]*Item, 0),
		history:       make([]*StatusChange, 0, 1),
		isConstructed: true,
	}
	o.transitionTo(Created)

	return o, nil
}

// RestoreOrder rehydrates an order from trusted storage. Every field is taken
// exactly as stored: no defaults are applied, no history entry is appended and
// nothing is validated. Items and history must already be in their stored order;
// both slices are copied.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	status Status,
	totalAmount decimal.Decimal,
	createdAt time.Time,
	items []*Item,
	history []*StatusChange,
) *Order {
	return &Order{
		id:            id,
		userID:        userID,
		status:        status,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		items:         append(make([]*Item, 0, len(items)), items...),
		history:       append(make([]*StatusChange, 0, len(history)), history...),
		isConstructed: true,
	}
}

// Validate ensures the Order instance was built through NewOrder or RestoreOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value order
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the exact sum of all item subtotals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// CreatedAt returns when the order was placed, in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the items in insertion order. The slice is a copy.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// StatusHistory returns the status changes, oldest first. The slice is a copy.
func (o *Order) StatusHistory() []*StatusChange {
	out := make([]*StatusChange, len(o.history))
	copy(out, o.history)
	return out
}

// AddItem appends a line to the order and adds its subtotal to the total.
//
// This method enforces the following business rules:
//   - The order must not be cancelled; any other status accepts items
//   - Quantity must be greater than 0
//   - Price must not be negative
//   - The resulting total must not be negative
//
// Parameters:
//   - productName: Name of the product, stored as given
//   - price: Unit price
//   - quantity: Number of units
//
// Returns:
//   - *Item: The added item
//   - error: ErrOrderCancelled as a state conflict, ErrInvalidQuantity,
//     ErrInvalidPrice or ErrInvalidAmount as validation errors
//
// Example:
//
//	item, err := o.AddItem("widget", decimal.RequireFromString("9.99"), 3)
//	if err != nil {
//	    // Order unchanged
//	}
//	_ = item.Subtotal() // 29.97
//
// On any failure the order is left unchanged.
func (o *Order) AddItem(productName string, price decimal.Decimal, quantity int) (*Item, error) {
	if err := o.status.ValidateAddItem(); err != nil {
		return nil, o.conflict(err)
	}

	item, err := newItem(o.id, productName, price, quantity)
	if err != nil {
		return nil, err
	}

	total := o.totalAmount.Add(item.Subtotal())
	if total.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total amount",
			fmt.Errorf("%w: %s", ErrInvalidAmount, total),
		)
	}

	o.items = append(o.items, item)
	o.totalAmount = total
	return item, nil
}

// Pay records payment for the order.
//
// This method enforces the following business rules:
//   - The order must be in Created status
//   - A paid order cannot be paid again
//
// Returns:
//   - nil on success, after appending a Paid history entry
//   - error: a state conflict caused by ErrOrderAlreadyPaid or ErrOrderCancelled
//
// Example:
//
//	if err := o.Pay(); errors.Is(err, order.ErrOrderAlreadyPaid) {
//	    // Already paid
//	}
func (o *Order) Pay() error {
	return o.apply(o.status.Pay)
}

// Cancel cancels an order that has not been paid.
//
// This method enforces the following business rules:
//   - Only a Created order can be cancelled
//   - Cancelled is a final state
//
// Returns:
//   - nil on success, after appending a Cancelled history entry
//   - error: a state conflict caused by ErrOrderAlreadyCancelled, ErrOrderAlreadyPaid
//     or ErrInvalidTransition
//
// Example:
//
//	err := o.Cancel()
//	if errors.Is(err, order.ErrOrderAlreadyPaid) {
//	    // Too late to cancel
//	}
func (o *Order) Cancel() error {
	return o.apply(o.status.Cancel)
}

// Ship marks a paid order as shipped.
//
// This method enforces the following business rules:
//   - The order must be in Paid status
//
// Returns:
//   - nil on success, after appending a Shipped history entry
//   - error: a state conflict caused by ErrInvalidTransition
//
// Example:
//
//	if err := o.Ship(); err != nil {
//	    // Order was not paid, or already shipped
//	}
func (o *Order) Ship() error {
	return o.apply(o.status.Ship)
}

// Complete marks a shipped order as delivered.
//
// This method enforces the following business rules:
//   - The order must be in Shipped status
//   - Completed is a final state with no further transitions
//
// Returns:
//   - nil on success, after appending a Completed history entry
//   - error: a state conflict caused by ErrInvalidTransition
//
// Example:
//
//	if err := o.Complete(); err != nil {
//	    // Order was not shipped
//	}
func (o *Order) Complete() error {
	return o.apply(o.status.Complete)
}

func (o *Order) apply(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return o.conflict(err)
	}
	o.transitionTo(next)
	return nil
}

// transitionTo is the only place status is assigned. It records the history
// entry in the same step, never earlier than the previous entry.
func (o *Order) transitionTo(next Status) {
	changedAt := kernel.Now()
	if n := len(o.history); n > 0 && changedAt.Before(o.history[n-1].changedAt) {
		changedAt = o.history[n-1].changedAt
	}
	if len(o.history) == 0 && !o.createdAt.IsZero() {
		changedAt = o.createdAt
	}

	o.status = next
	o.history = append(o.history, &StatusChange{
		id:        kernel.NewUUID(),
		orderID:   o.id,
		status:    next,
		changedAt: changedAt,
	})
}

func (o *Order) conflict(cause error) error {
	return errs.NewStateConflictErrorWithCause("order", o.id.String(), cause)
}
