package commands

import (
	"errors"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrExpireUnpaidOrdersCommandIsNotConstructed = errors.New(
	"ExpireUnpaidOrdersCommand must be created via NewExpireUnpaidOrdersCommand constructor",
)

// ExpireUnpaidOrdersCommand cancels orders that stayed in Created status longer
// than ttl.
type ExpireUnpaidOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireUnpaidOrdersCommand creates the command for one expiry sweep.
//
// Parameters:
//   - ttl: How long an order may stay unpaid (must be positive)
//
// Returns:
//   - ExpireUnpaidOrdersCommand: The validated command
//   - error: Out of range error if ttl <= 0
func NewExpireUnpaidOrdersCommand(ttl time.Duration) (ExpireUnpaidOrdersCommand, error) {
	cmd := ExpireUnpaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return ExpireUnpaidOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireUnpaidOrdersCommandIsNotConstructed)
}

// TTL returns how long an order may stay unpaid.
func (c ExpireUnpaidOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c *ExpireUnpaidOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, time.Nanosecond, time.Duration(1<<63-1))
	}

	c.ttl = ttl
	return nil
}
