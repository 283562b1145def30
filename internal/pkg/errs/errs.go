package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is. Each structured
// error type below unwraps to exactly one of these.
var (
	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrObjectNotFound  = errors.New("object not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("conflict")
	ErrInvalidState    = errors.New("invalid state transition")
	ErrTransport       = errors.New("store unreachable")
)

// sanitize collapses newlines so error messages stay on a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %v", ErrObjectNotFound, sanitize(e.ParamName), e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AuthorizationError indicates that the caller lacks the role or capability
// required for the requested operation.
type AuthorizationError struct {
	Operation string
	Cause     error
}

// NewAuthorizationError creates an AuthorizationError for the named operation.
func NewAuthorizationError(operation string) *AuthorizationError {
	return &AuthorizationError{Operation: operation}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an underlying cause.
func NewAuthorizationErrorWithCause(operation string, cause error) *AuthorizationError {
	return &AuthorizationError{Operation: operation, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUnauthorized, sanitize(e.Operation)), e.Cause)
}

func (e *AuthorizationError) Unwrap() error {
	return ErrUnauthorized
}

// ConflictError indicates that a uniqueness or in-flight invariant is
// violated, for example a second pending application for the same role.
type ConflictError struct {
	Detail string
	Cause  error
}

// NewConflictError creates a ConflictError with a human-readable detail.
func NewConflictError(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(detail string, cause error) *ConflictError {
	return &ConflictError{Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.Detail)), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStateError indicates that the requested state change is not a legal
// successor of the entity's current state.
type InvalidStateError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewInvalidStateError creates an InvalidStateError describing the rejected transition.
func NewInvalidStateError(entity, from, to string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, From: from, To: to}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(entity, from, to string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidState, sanitize(e.Entity), e.From, e.To),
		e.Cause,
	)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// TransportError indicates that the entity store could not be reached.
// It is always retryable by the caller; mutating operations are never
// retried automatically since their side effects may not be idempotent.
type TransportError struct {
	Operation string
	Cause     error
}

// NewTransportError creates a TransportError for the named operation.
func NewTransportError(operation string) *TransportError {
	return &TransportError{Operation: operation}
}

// NewTransportErrorWithCause creates a TransportError wrapping an underlying cause.
func NewTransportErrorWithCause(operation string, cause error) *TransportError {
	return &TransportError{Operation: operation, Cause: cause}
}

func (e *TransportError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrTransport, sanitize(e.Operation)), e.Cause)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}
