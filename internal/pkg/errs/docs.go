// Package errs provides the typed error taxonomy shared by every layer of
// the platform core. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The taxonomy covers the semantic failure modes of the workflows:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: a referenced id does not exist
//   - AuthorizationError: the caller lacks the role or admin capability
//   - ConflictError: a uniqueness or in-flight invariant is violated
//   - InvalidStateError: a state change is not a legal successor
//   - TransportError: the entity store is unreachable (caller-retryable)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// No operation in this module swallows an error and returns a misleading
// success value; transport failures are surfaced as TransportError and are
// never silently retried for mutations.
package errs
