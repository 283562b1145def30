package services

import (
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
)

// DriverEligibility is a domain service that selects the subset of orders a
// given driver may take or is currently carrying.
//
// Business rules:
//   - Confirmed orders are open to every driver
//   - Assigned orders with no driver remain open
//   - Assigned orders with a driver are only visible to that driver
//   - Every other status is out of scope for drivers
//
// The filter is role- and identity-scoped, not merely status-scoped: two
// drivers asking at the same moment can receive different sets.
type DriverEligibility struct{}

// NewDriverEligibility creates a DriverEligibility service instance.
func NewDriverEligibility() DriverEligibility {
	return DriverEligibility{}
}

// EligibleOrders returns the orders from the given set that the driver may
// see, preserving input order. Invalid (nil or unconstructed) orders are
// skipped rather than failing the whole set.
func (DriverEligibility) EligibleOrders(orders []*order.Order, driverID kernel.UUID) []*order.Order {
	eligible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}

		if o.EligibleForDriver(driverID) {
			eligible = append(eligible, o)
		}
	}
	return eligible
}
