// Package errs provides standardized error types for the food-court core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the core:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: a referenced order, dish, restaurant, or category is absent
//   - NotAuthorizedError: wrong role, not the owner, not affiliated with the restaurant
//   - ConflictError: uniqueness violations, already-claimed orders, illegal transitions
//   - DependencyFailureError: the role directory was unreachable or inconsistent
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// Use cases validate synchronously and fail fast with the first violated rule;
// the HTTP adapter maps the sentinels to response codes without parsing messages.
package errs
