// Package user provides the User entity: an identity with a validated email
// address, created once and immutable afterwards.
//
// Key business rules:
//   - The email must match ^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9-.]+$
//   - Identifier and creation time are assigned by NewUser
//   - RestoreUser rehydrates a stored user without re-running validation
//
// Email uniqueness is not a property of a single entity; it is enforced by the
// register use case and by a unique index in storage.
package user
