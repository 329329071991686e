package order

import (
	"time"

	"shop/internal/core/domain/model/kernel"
)

// StatusChange is an audit record of one status transition.
type StatusChange struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	changedAt time.Time
}

// RestoreStatusChange rehydrates a stored history entry without validation.
func RestoreStatusChange(id, orderID kernel.UUID, status Status, changedAt time.Time) *StatusChange {
	return &StatusChange{
		id:        id,
		orderID:   orderID,
		status:    status,
		changedAt: changedAt,
	}
}

// ID returns the entry's unique identifier.
func (c *StatusChange) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the order whose status changed.
func (c *StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status the order moved into.
func (c *StatusChange) Status() Status {
	return c.status
}

// ChangedAt returns when the transition happened, in UTC.
func (c *StatusChange) ChangedAt() time.Time {
	return c.changedAt
}
