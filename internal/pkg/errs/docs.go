// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when an object collides with an existing one
//   - StateConflictError: For when an operation is not allowed in the object's current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method exposing both the sentinel and the cause
//
// Domain packages declare their own specific sentinels (for example
// order.ErrOrderAlreadyPaid) and pass them as the cause of one of these
// generic kinds. Callers can then match either the specific failure or its
// category with errors.Is, which is how the HTTP adapter maps failures to
// status codes without knowing every domain rule.
package errs
