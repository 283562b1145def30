package errs_test

import (
	"errors"
	"testing"

	"thumathina/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("fullName")

		assert.Equal(t, "fullName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: fullName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("fullName", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: fullName (cause: missing required field)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("total")

		assert.Equal(t, "total", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: total", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("declared total does not match line sum")
		err := errs.NewValueIsInvalidErrorWithCause("total", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: total (cause: declared total does not match line sum)", err.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		cause := errors.New("line one\nline two")
		err := errs.NewValueIsInvalidErrorWithCause("payload", cause)

		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "o-123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "o-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: orderId is o-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("row missing")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "o-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: orderId is o-123 (cause: row missing)", err.Error())
	})

	t.Run("non-string identifiers", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("listingId", 456)
		assert.Equal(t, "object not found: listingId is 456", err.Error())
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := errs.NewAuthorizationError("listAllOrders")

		assert.Equal(t, "listAllOrders", err.Operation)
		assert.Equal(t, "unauthorized: listAllOrders", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewAuthorizationErrorWithCause", func(t *testing.T) {
		cause := errors.New("admin capability required")
		err := errs.NewAuthorizationErrorWithCause("reviewApplication", cause)

		assert.Equal(t, "unauthorized: reviewApplication (cause: admin capability required)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("a pending driver application already exists")

		assert.Equal(t, "conflict: a pending driver application already exists", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique index violated")
		err := errs.NewConflictErrorWithCause("duplicate application", cause)

		assert.Equal(t, cause, err.Cause)
		assert.True(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("order", "placed", "completed")

		assert.Equal(t, "order", err.Entity)
		assert.Equal(t, "placed", err.From)
		assert.Equal(t, "completed", err.To)
		assert.Equal(t, "invalid state transition: order cannot move from placed to completed", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("application already reviewed")
		err := errs.NewInvalidStateErrorWithCause("application", "approved", "approved", cause)

		assert.Contains(t, err.Error(), "cause: application already reviewed")
		assert.True(t, errors.Is(err, errs.ErrInvalidState))
	})
}

func TestTransportError(t *testing.T) {
	t.Run("NewTransportError", func(t *testing.T) {
		err := errs.NewTransportError("listAllOrders")

		assert.Equal(t, "store unreachable: listAllOrders", err.Error())
		assert.Equal(t, errs.ErrTransport, err.Unwrap())
	})

	t.Run("NewTransportErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewTransportErrorWithCause("updateOrderStatus", cause)

		assert.Equal(t, "store unreachable: updateOrderStatus (cause: connection refused)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrTransport))
	})
}
