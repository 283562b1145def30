// Package kafka connects the system to its event streams: a consumer that
// turns checkout-confirmed events into placed orders, and a producer that
// announces order status changes after successful mutations.
package kafka

import (
	"time"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/pkg/errs"
)

// CheckoutLine is one basket line of a checkout-confirmed event.
type CheckoutLine struct {
	ListingID string `json:"listing_id"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unit_price"`
}

// CheckoutConfirmedEvent is the payload the checkout service emits once a
// customer's payment clears. PickupPointID is set when the customer chose
// collection at checkout; empty means door delivery.
type CheckoutConfirmedEvent struct {
	OrderID       string         `json:"order_id"`
	RetailerID    string         `json:"retailer_id"`
	PickupPointID string         `json:"pickup_point_id,omitempty"`
	Lines         []CheckoutLine `json:"lines"`
	Total         int64          `json:"total"`
	ConfirmedAt   time.Time      `json:"confirmed_at"`
}

// orderFromCheckout builds the placed order the event describes. The declared
// total is carried through so a basket that drifted from its line subtotals
// is rejected by the aggregate rather than silently recomputed.
func orderFromCheckout(e CheckoutConfirmedEvent) (*order.Order, error) {
	orderID, err := kernel.UUIDFromString(e.OrderID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order_id", err)
	}

	retailerID, err := kernel.UUIDFromString(e.RetailerID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("retailer_id", err)
	}

	lines := make([]order.Line, 0, len(e.Lines))
	for _, l := range e.Lines {
		listingID, err := kernel.UUIDFromString(l.ListingID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("listing_id", err)
		}

		unitPrice, err := kernel.NewMoney(l.UnitPrice)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(listingID, l.Qty, unitPrice)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	total, err := kernel.NewMoney(e.Total)
	if err != nil {
		return nil, err
	}

	if e.PickupPointID == "" {
		return order.NewOrder(orderID, retailerID, lines, total, e.ConfirmedAt)
	}

	pickupPointID, err := kernel.UUIDFromString(e.PickupPointID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("pickup_point_id", err)
	}

	return order.NewPickupOrder(orderID, retailerID, pickupPointID, lines, total, e.ConfirmedAt)
}

// OrderChangedEvent announces that an order moved to a new status.
type OrderChangedEvent struct {
	OrderID       string    `json:"order_id"`
	RetailerID    string    `json:"retailer_id"`
	PickupPointID *string   `json:"pickup_point_id,omitempty"`
	DriverID      *string   `json:"driver_id,omitempty"`
	Status        string    `json:"status"`
	Total         int64     `json:"total"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func orderChangedFromDomain(o *order.Order) OrderChangedEvent {
	e := OrderChangedEvent{
		OrderID:    o.ID().String(),
		RetailerID: o.RetailerID().String(),
		Status:     o.Status().String(),
		Total:      o.Total().Amount(),
		OccurredAt: o.UpdatedAt(),
	}

	if id := o.PickupPointID(); id != nil {
		s := id.String()
		e.PickupPointID = &s
	}
	if id := o.DriverID(); id != nil {
		s := id.String()
		e.DriverID = &s
	}

	return e
}
