// Package guard provides ConstructorGuard, a marker that lets value types
// such as commands and queries detect zero-value construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must be created through their
// NewX constructor. The zero value reports itself as not constructed.
//
// Example usage:
//
//	type RegisterUserCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c RegisterUserCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
