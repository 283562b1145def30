// Package services contains stateless domain services that operate across
// aggregates. DriverEligibility computes the role- and identity-scoped
// subset of orders visible to a driver.
package services
