// Package errs provides the typed error taxonomy for the warehouse backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//   - Generic validation errors (ValueIsRequiredError, ValueIsInvalidError,
//     ObjectNotFoundError) raised by value objects and repositories.
//   - Order-engine outcomes (ProductsNotFoundError, InvalidStateError,
//     InvalidTransitionError, ForbiddenError, VersionConflictError,
//     InsufficientInventoryError, DuplicateKeyError) raised by the order
//     lifecycle operations and translated to wire responses by the HTTP adapter.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrVersionConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with a WithCause variant where a lower-level
//     cause is worth preserving
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify outcomes
//     with errors.Is without depending on concrete types
package errs
