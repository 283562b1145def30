package application

import (
	"fmt"

	"thumathina/internal/pkg/errs"
)

// reviewState is the internal tag of the Status sum type.
type reviewState int

const (
	statePending reviewState = iota + 1
	stateApproved
	stateRejected
)

// Status is the review state of a role application: pending, approved, or
// rejected. It is a sum type: the rejection reason is only representable in
// the rejected variant, so an approved record can never carry a reason.
//
// The zero value is invalid; use StatusPending, StatusApproved, or
// StatusRejected.
//
// Example:
//
//	status, err := application.StatusRejected("incomplete vehicle documents")
//	if err != nil {
//	    // a rejection always requires a reason
//	}
//	reason, _ := status.Reason() // "incomplete vehicle documents"
type Status struct {
	state  reviewState
	reason string
}

// StatusPending returns the pending review state.
func StatusPending() Status {
	return Status{state: statePending}
}

// StatusApproved returns the approved terminal state.
func StatusApproved() Status {
	return Status{state: stateApproved}
}

// StatusRejected returns the rejected terminal state carrying the mandatory
// rejection reason. An empty reason is a validation error.
func StatusRejected(reason string) (Status, error) {
	if reason == "" {
		return Status{}, errs.NewValueIsRequiredError("reason")
	}
	return Status{state: stateRejected, reason: reason}, nil
}

// StatusFromString reconstructs a Status from its wire representation.
// The reason argument is only consulted for "rejected".
func StatusFromString(s string, reason string) (Status, error) {
	switch s {
	case "pending":
		return StatusPending(), nil
	case "approved":
		return StatusApproved(), nil
	case "rejected":
		return StatusRejected(reason)
	default:
		return Status{}, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid application status", s))
	}
}

// Validate checks that the Status is one of the three review states.
func (s Status) Validate() error {
	switch s.state {
	case statePending, stateApproved, stateRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid application status", s.state))
	}
}

// IsPending reports whether the application awaits review.
func (s Status) IsPending() bool {
	return s.state == statePending
}

// IsApproved reports whether the application was approved.
func (s Status) IsApproved() bool {
	return s.state == stateApproved
}

// IsRejected reports whether the application was rejected.
func (s Status) IsRejected() bool {
	return s.state == stateRejected
}

// IsTerminal reports whether the review is closed.
func (s Status) IsTerminal() bool {
	return s.state == stateApproved || s.state == stateRejected
}

// Reason returns the rejection reason. The second return value is false for
// every state except rejected.
func (s Status) Reason() (string, bool) {
	if s.state != stateRejected {
		return "", false
	}
	return s.reason, true
}

// String returns the wire representation of the review state.
func (s Status) String() string {
	switch s.state {
	case statePending:
		return "pending"
	case stateApproved:
		return "approved"
	case stateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
