package order

import (
	"fmt"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
)

// Line is a single order line referencing a listing with a quantity and the
// unit price captured at checkout time. Line is an immutable value object.
type Line struct {
	listingID kernel.UUID
	qty       int
	unitPrice kernel.Money
}

// NewLine creates an order line.
// The listing reference must be valid and the quantity positive.
func NewLine(listingID kernel.UUID, qty int, unitPrice kernel.Money) (Line, error) {
	if err := listingID.Validate(); err != nil {
		return Line{}, err
	}

	if qty <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	return Line{
		listingID: listingID,
		qty:       qty,
		unitPrice: unitPrice,
	}, nil
}

// ListingID returns the referenced listing.
func (l Line) ListingID() kernel.UUID {
	return l.listingID
}

// Qty returns the ordered quantity.
func (l Line) Qty() int {
	return l.qty
}

// UnitPrice returns the unit price captured at checkout time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns qty times unit price.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MulQty(l.qty)
}

// TotalOf sums the subtotals of a line set.
func TotalOf(lines []Line) kernel.Money {
	var total kernel.Money
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
