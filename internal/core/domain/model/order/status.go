package order

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyPaid is returned when paying or cancelling an order that has been paid.
	ErrOrderAlreadyPaid = errors.New("order is already paid")

	// ErrOrderCancelled is returned when paying or adding items to a cancelled order.
	ErrOrderCancelled = errors.New("order is cancelled")

	// ErrOrderAlreadyCancelled is returned when cancelling a cancelled order.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")

	// ErrInvalidTransition is returned for any other transition not in the lifecycle.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Paid ──> Shipped ──> Completed
//	   │
//	   └──> Cancelled
//
// Cancelled and Completed are terminal.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota
	Created
	Paid
	Cancelled
	Shipped
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Created:   "created",
		Paid:      "paid",
		Cancelled: "cancelled",
		Shipped:   "shipped",
		Completed: "completed",
	}
}

// ParseStatus converts the stored or serialized form back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name used in storage and over HTTP,
// or "unknown" for undefined values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Completed
}

// ValidateAddItem allows adding items in every state except Cancelled.
func (s Status) ValidateAddItem() error {
	if s == Cancelled {
		return fmt.Errorf("%w: cannot add items", ErrOrderCancelled)
	}
	return nil
}

// Pay transitions Created -> Paid. An order that has already been paid
// (Paid, Shipped or Completed) fails with ErrOrderAlreadyPaid, a cancelled
// one with ErrOrderCancelled.
func (s Status) Pay() (Status, error) {
	switch s {
	case Created:
		return Paid, nil
	case Paid, Shipped, Completed:
		return Unknown, fmt.Errorf("%w: status is %s", ErrOrderAlreadyPaid, s)
	case Cancelled:
		return Unknown, fmt.Errorf("%w: cannot pay", ErrOrderCancelled)
	default:
		return Unknown, fmt.Errorf("%w: cannot pay from %s", ErrInvalidTransition, s)
	}
}

// Cancel transitions Created -> Cancelled. Cancelling after payment is
// rejected with ErrOrderAlreadyPaid.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Created:
		return Cancelled, nil
	case Cancelled:
		return Unknown, ErrOrderAlreadyCancelled
	case Paid:
		return Unknown, fmt.Errorf("%w: cannot cancel", ErrOrderAlreadyPaid)
	default:
		return Unknown, fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, s)
	}
}

// Ship transitions Paid -> Shipped.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return Unknown, fmt.Errorf("%w: cannot ship from %s", ErrInvalidTransition, s)
	}
	return Shipped, nil
}

// Complete transitions Shipped -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return Unknown, fmt.Errorf("%w: cannot complete from %s", ErrInvalidTransition, s)
	}
	return Completed, nil
}
