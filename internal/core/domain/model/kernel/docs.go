// Package kernel contains the shared value objects of the domain model:
// UUID identifiers, whole-rand Money amounts, and the Actor caller-identity
// capability. These types are immutable, validate themselves on
// construction, and carry no behavior specific to any single aggregate.
package kernel
