package order

import (
	"errors"
	"time"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder, NewPickupOrder, or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, NewPickupOrder, or RestoreOrder")

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from checkout through fulfillment.
//
// Order follows these invariants:
//   - Has exactly one status at any time; transitions are monotonic along the
//     defined graph, with cancellation the only path out of the forward flow
//   - Has a valid unique identifier and a valid retailer reference
//   - Has at least one line; every line has a positive quantity
//   - The total always equals the sum of line quantity times unit price
//   - Never deleted, only status-terminated
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id kernel.UUID

	// retailerID references the retailer fulfilling the order
	retailerID kernel.UUID

	// driverID is the assigned driver (nil until a driver takes the order)
	driverID *kernel.UUID

	// pickupPointID is the pickup point for walk-in fulfillment (nil for delivery orders)
	pickupPointID *kernel.UUID

	lines []Line
	total kernel.Money

	status    Status
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a delivery order from a customer checkout.
//
// The declared total must equal the sum of line subtotals; a mismatch is
// rejected with a validation error rather than silently recomputed, since a
// mismatch signals a stale or tampered checkout basket.
//
// The order starts in Placed status with no driver or pickup point assigned.
func NewOrder(
	id kernel.UUID,
	retailerID kernel.UUID,
	lines []Line,
	declaredTotal kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRetailerID(retailerID),
		o.setLines(lines, declaredTotal),
	); err != nil {
		return nil, err
	}

	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// NewPickupOrder creates an order on behalf of a walk-in customer at a
// pickup point. Same validation as NewOrder plus a valid pickup point
// reference; the order is bound to that pickup point from the start.
func NewPickupOrder(
	id kernel.UUID,
	retailerID kernel.UUID,
	pickupPointID kernel.UUID,
	lines []Line,
	declaredTotal kernel.Money,
	now time.Time,
) (*Order, error) {
	if err := pickupPointID.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, retailerID, lines, declaredTotal, now)
	if err != nil {
		return nil, err
	}

	o.pickupPointID = &pickupPointID
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The status must be a valid lifecycle state; line and total consistency is
// re-checked so a corrupted row cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	retailerID kernel.UUID,
	pickupPointID *kernel.UUID,
	driverID *kernel.UUID,
	lines []Line,
	total kernel.Money,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, retailerID, lines, total, createdAt)
	if err != nil {
		return nil, err
	}

	o.pickupPointID = pickupPointID
	o.driverID = driverID
	o.status = status
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RetailerID returns the fulfilling retailer's identifier.
func (o *Order) RetailerID() kernel.UUID {
	return o.retailerID
}

// PickupPointID returns the assigned pickup point, or nil for delivery orders.
func (o *Order) PickupPointID() *kernel.UUID {
	return o.pickupPointID
}

// DriverID returns the assigned driver, or nil if no driver has taken the order.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Lines returns the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Total returns the order total in whole rand.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to a legal successor status.
// Returns *errs.InvalidStateError when the transition is not an immediate
// successor of the current status per the lifecycle graph.
func (o *Order) TransitionTo(to Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Confirm marks the order accepted by the retailer.
func (o *Order) Confirm(now time.Time) error {
	return o.TransitionTo(Confirmed, now)
}

// AssignDriver assigns a driver and moves the order to Assigned.
// Reassignment while still in Assigned status is allowed.
func (o *Order) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status != Assigned {
		if err := o.TransitionTo(Assigned, now); err != nil {
			return err
		}
	}

	o.driverID = &driverID
	o.updatedAt = now
	return nil
}

// StartDelivery moves an assigned order out for delivery.
// A driver must be assigned first.
func (o *Order) StartDelivery(now time.Time) error {
	if o.driverID == nil {
		return errs.NewInvalidStateErrorWithCause("order", o.status.String(), OutForDelivery.String(),
			errors.New("no driver assigned"))
	}
	return o.TransitionTo(OutForDelivery, now)
}

// MarkReadyForPickup moves an assigned order to awaiting collection.
// The order must be bound to a pickup point.
func (o *Order) MarkReadyForPickup(now time.Time) error {
	if o.pickupPointID == nil {
		return errs.NewInvalidStateErrorWithCause("order", o.status.String(), ReadyForPickup.String(),
			errors.New("no pickup point assigned"))
	}
	return o.TransitionTo(ReadyForPickup, now)
}

// Complete marks the order fulfilled. Terminal.
func (o *Order) Complete(now time.Time) error {
	return o.TransitionTo(Completed, now)
}

// Cancel abandons the order from any non-terminal state. Terminal.
func (o *Order) Cancel(now time.Time) error {
	return o.TransitionTo(Cancelled, now)
}

// EligibleForDriver reports whether the order appears in the given driver's
// eligible list: Confirmed, or Assigned with no driver yet, or Assigned to
// this very driver. The filter is role- and identity-scoped, not merely
// status-scoped.
func (o *Order) EligibleForDriver(driverID kernel.UUID) bool {
	switch o.status {
	case Confirmed:
		return true
	case Assigned:
		return o.driverID == nil || o.driverID.IsEqual(driverID)
	default:
		return false
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("retailerID", err)
	}
	o.retailerID = retailerID
	return nil
}

func (o *Order) setLines(lines []Line, declaredTotal kernel.Money) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	computed := TotalOf(lines)
	if !computed.IsEqual(declaredTotal) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			errors.New("declared total does not match the sum of line subtotals"))
	}

	o.lines = append([]Line(nil), lines...)
	o.total = computed
	return nil
}
