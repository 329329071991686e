package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to register a new user.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("alice@example.com", "Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//
//	registered, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email string
	name  string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates the email format up front so a malformed
// address never reaches the database. Surrounding whitespace is trimmed.
func NewRegisterUserCommand(email, name string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the trimmed, validated address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the trimmed display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if err := user.ValidateEmail(email); err != nil {
		return err
	}

	c.email = email
	return nil
}
