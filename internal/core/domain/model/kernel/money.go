package kernel

import (
	"fmt"

	"thumathina/internal/pkg/errs"
)

// Money represents a monetary amount in whole rand.
// The platform trades at whole-rand granularity, so the amount is a
// non-negative integer with no minor units.
//
// Money is an immutable value object; arithmetic methods return new values.
// The zero value (zero rand) is valid and represents an empty amount.
//
// Example:
//
//	unitPrice, _ := kernel.NewMoney(50)
//	total := unitPrice.MulQty(2)
//	fmt.Println(total) // Output: R100
type Money struct {
	amount int64
}

// NewMoney creates a Money value from a whole-rand amount.
// Returns a validation error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the whole-rand amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MulQty returns the amount multiplied by a line quantity.
// Quantities are validated by the order aggregate before reaching here.
func (m Money) MulQty(qty int) Money {
	return Money{amount: m.amount * int64(qty)}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with the rand symbol, e.g. "R100".
func (m Money) String() string {
	return fmt.Sprintf("R%d", m.amount)
}
