package user

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrInvalidEmail is the cause carried by the validation error NewUser
	// returns for a malformed address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrUserIsNotConstructed is returned by Validate for a User that was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrUserNotFound is the cause of the not found error returned when a user
	// referenced by id or email does not exist.
	ErrUserNotFound = errors.New("user not found")
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9-.]+$`)

// User is a registered customer who can place orders.
type User struct {
	id        kernel.UUID
	email     string
	name      string
	createdAt time.Time

	isConstructed bool
}

// NewUser registers a new identity. The email is validated; id and creation
// time are assigned here. An empty name is allowed.
//
// Example:
//
//	u, err := user.NewUser("ada@example.com", "Ada")
//	if errors.Is(err, user.ErrInvalidEmail) {
//	    // reject the request
//	}
func NewUser(email, name string) (*User, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	return &User{
		id:            kernel.NewUUID(),
		email:         email,
		name:          name,
		createdAt:     kernel.Now(),
		isConstructed: true,
	}, nil
}

// RestoreUser rehydrates a user from trusted storage. Fields are taken as
// stored: no defaults are applied and the email is not re-validated.
func RestoreUser(id kernel.UUID, email, name string, createdAt time.Time) *User {
	return &User{
		id:            id,
		email:         email,
		name:          name,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

// ValidateEmail checks email against the accepted address format: a local part,
// a single "@" and a dotted domain.
//
// Returns:
//   - nil if the address is acceptable
//   - a validation error caused by ErrInvalidEmail otherwise
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%w: %q", ErrInvalidEmail, email))
	}
	return nil
}

// Validate ensures the User instance was built through NewUser or RestoreUser.
//
// Returns:
//   - nil if the user is valid
//   - ErrUserIsNotConstructed for a nil or zero-value user
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the address the user registered with.
func (u *User) Email() string {
	return u.email
}

// Name returns the display name, which may be empty.
func (u *User) Name() string {
	return u.name
}

// CreatedAt returns when the user registered, in UTC.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
