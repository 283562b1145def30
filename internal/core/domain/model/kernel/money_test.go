package kernel_test

import (
	"testing"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create non-negative amounts", func(t *testing.T) {
		for _, amount := range []int64{0, 1, 50, 100000} {
			m, err := kernel.NewMoney(amount)

			require.NoError(t, err)
			assert.Equal(t, amount, m.Amount())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(60)
		b, _ := kernel.NewMoney(40)

		assert.Equal(t, int64(100), a.Add(b).Amount())
	})

	t.Run("MulQty multiplies by line quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(50)

		assert.Equal(t, int64(100), unitPrice.MulQty(2).Amount())
	})

	t.Run("IsEqual compares amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(100)
		c, _ := kernel.NewMoney(99)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("formats whole rand", func(t *testing.T) {
		m, _ := kernel.NewMoney(100)

		assert.Equal(t, "R100", m.String())
	})
}
