package order

import (
	"fmt"

	"thumathina/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Placed ──> Confirmed ──> Assigned ──┬──> OutForDelivery ──┐
//	                                    │                     ├──> Completed
//	                                    └──> ReadyForPickup ──┘
//
//	Cancelled is reachable from every non-terminal state.
//
// Completed and Cancelled are terminal: no further transitions are allowed,
// and orders are never deleted, only status-terminated.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the wire.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status set by a customer checkout action.
	Placed

	// Confirmed indicates the retailer has accepted the order for fulfillment.
	Confirmed

	// Assigned indicates the order has been routed for delivery or pickup.
	// A driver assignment is optional in this status: an order can be
	// assigned to a pickup point with no driver yet.
	Assigned

	// OutForDelivery indicates a driver is delivering the order.
	OutForDelivery

	// ReadyForPickup indicates the order awaits collection at a pickup point.
	ReadyForPickup

	// Completed indicates the order has been fulfilled. Terminal.
	Completed

	// Cancelled indicates the order was abandoned before fulfillment. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Placed:         "placed",
		Confirmed:      "confirmed",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		ReadyForPickup: "ready_for_pickup",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// successors defines the legal immediate successors of each status.
// Cancellation from non-terminal states is handled separately so the table
// only names forward transitions.
func successors() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Confirmed},
		Confirmed:      {Assigned},
		Assigned:       {OutForDelivery, ReadyForPickup},
		OutForDelivery: {Completed},
		ReadyForPickup: {Completed},
		Completed:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a wire representation into a Status.
// Returns a validation error for unknown representations.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := successors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether to is a legal immediate successor of s.
// Cancellation is legal from every valid non-terminal status; every other
// transition must appear in the successor table. A no-op transition to the
// same status is not legal: the store serializes conflicting writes, so a
// repeated transition signals a stale caller.
func (s Status) CanTransitionTo(to Status) bool {
	if s.Validate() != nil || to.Validate() != nil {
		return false
	}

	if to == Cancelled {
		return !s.IsTerminal()
	}

	for _, next := range successors()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo transitions the status to the given successor.
//
// Returns:
//   - (to, nil) on a legal transition
//   - (0, *errs.InvalidStateError) when to is not an immediate successor
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(to) {
		return 0, errs.NewInvalidStateError("order", s.String(), to.String())
	}

	return to, nil
}
