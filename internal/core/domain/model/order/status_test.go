package order_test

import (
	"fmt"
	"testing"

	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate lifecycle statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Placed,
			order.Confirmed,
			order.Assigned,
			order.OutForDelivery,
			order.ReadyForPickup,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Placed, "placed"},
		{order.Confirmed, "confirmed"},
		{order.Assigned, "assigned"},
		{order.OutForDelivery, "out_for_delivery"},
		{order.ReadyForPickup, "ready_for_pickup"},
		{order.Completed, "completed"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every lifecycle status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Placed, order.Confirmed, order.Assigned,
			order.OutForDelivery, order.ReadyForPickup,
			order.Completed, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown representations", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "shipped", "PLACED"} {
			_, err := order.StatusFromString(raw)

			require.Error(t, err, "input %q", raw)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("allows forward successors", func(t *testing.T) {
		allowed := []struct{ from, to order.Status }{
			{order.Placed, order.Confirmed},
			{order.Confirmed, order.Assigned},
			{order.Assigned, order.OutForDelivery},
			{order.Assigned, order.ReadyForPickup},
			{order.OutForDelivery, order.Completed},
			{order.ReadyForPickup, order.Completed},
		}

		for _, tc := range allowed {
			assert.True(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be allowed", tc.from, tc.to)
		}
	})

	t.Run("allows cancellation from every non-terminal state", func(t *testing.T) {
		for _, from := range []order.Status{
			order.Placed, order.Confirmed, order.Assigned,
			order.OutForDelivery, order.ReadyForPickup,
		} {
			assert.True(t, from.CanTransitionTo(order.Cancelled),
				"%s -> cancelled should be allowed", from)
		}
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		rejected := []struct{ from, to order.Status }{
			{order.Placed, order.Completed},
			{order.Placed, order.Assigned},
			{order.Confirmed, order.OutForDelivery},
			{order.Confirmed, order.Completed},
		}

		for _, tc := range rejected {
			assert.False(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be rejected", tc.from, tc.to)
		}
	})

	t.Run("rejects backward transitions", func(t *testing.T) {
		assert.False(t, order.Confirmed.CanTransitionTo(order.Placed))
		assert.False(t, order.OutForDelivery.CanTransitionTo(order.Assigned))
	})

	t.Run("rejects any transition out of terminal states", func(t *testing.T) {
		for _, to := range []order.Status{
			order.Placed, order.Confirmed, order.Assigned,
			order.OutForDelivery, order.ReadyForPickup,
			order.Completed, order.Cancelled,
		} {
			assert.False(t, order.Completed.CanTransitionTo(to))
			assert.False(t, order.Cancelled.CanTransitionTo(to))
		}
	})

	t.Run("rejects transitions involving Unknown", func(t *testing.T) {
		assert.False(t, order.Unknown.CanTransitionTo(order.Placed))
		assert.False(t, order.Placed.CanTransitionTo(order.Unknown))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("returns the new status on a legal transition", func(t *testing.T) {
		next, err := order.Placed.TransitionTo(order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("returns InvalidStateError on an illegal transition", func(t *testing.T) {
		_, err := order.Placed.TransitionTo(order.Completed)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidStateError{}, err)
		assert.Contains(t, err.Error(), "placed")
		assert.Contains(t, err.Error(), "completed")
	})

	t.Run("stepwise walk through the full lifecycle succeeds", func(t *testing.T) {
		status := order.Placed
		for _, next := range []order.Status{
			order.Confirmed, order.Assigned, order.OutForDelivery, order.Completed,
		} {
			var err error
			status, err = status.TransitionTo(next)
			require.NoError(t, err)
		}

		assert.Equal(t, order.Completed, status)
	})
}
