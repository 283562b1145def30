// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created by a customer checkout action (or by a pickup point on
// behalf of a walk-in customer), is fulfilled by a retailer, and is moved
// through its lifecycle by the retailer, a driver, a pickup point operator,
// or an admin override. The status state machine enforces that every change
// is a legal immediate successor of the current status; orders are never
// deleted, only terminated in Completed or Cancelled.
package order
