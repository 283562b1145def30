package ports

import (
	"context"
	"fmt"

	"thumathina/internal/core/domain/model/kernel"
)

// ScopeKey identifies a cached view: an entity kind plus the parameters that
// disambiguate whose view it is. Scope keys are comparable values and are
// used as cache map keys.
type ScopeKey struct {
	Kind  string
	Param string
}

func (k ScopeKey) String() string {
	if k.Param == "" {
		return k.Kind
	}
	return fmt.Sprintf("%s:%s", k.Kind, k.Param)
}

// OrdersAllScope keys the admin all-orders view.
func OrdersAllScope() ScopeKey {
	return ScopeKey{Kind: "orders", Param: "all"}
}

// OrdersDriverEligibleScope keys the caller's driver-eligible orders view.
// The cache is per-caller, so the scope needs no driver parameter.
func OrdersDriverEligibleScope() ScopeKey {
	return ScopeKey{Kind: "orders", Param: "driver-eligible"}
}

// OrdersRetailerScope keys a retailer's order view.
func OrdersRetailerScope(retailerID kernel.UUID) ScopeKey {
	return ScopeKey{Kind: "orders", Param: "retailer:" + retailerID.String()}
}

// OrdersPickupPointScope keys a pickup point's order view.
func OrdersPickupPointScope(pickupPointID kernel.UUID) ScopeKey {
	return ScopeKey{Kind: "orders", Param: "pickup-point:" + pickupPointID.String()}
}

// OrderDetailScope keys the single-order detail view.
func OrderDetailScope(orderID kernel.UUID) ScopeKey {
	return ScopeKey{Kind: "order", Param: orderID.String()}
}

// ApplicationScope keys an applicant's role-application view. The derived
// my-status projection reads through the same scope, keeping it consistent
// with the application view at all times.
func ApplicationScope(role kernel.Role, applicant kernel.UUID) ScopeKey {
	return ScopeKey{Kind: "application", Param: string(role) + ":" + applicant.String()}
}

// PendingApplicationsScope keys the admin review inbox.
func PendingApplicationsScope() ScopeKey {
	return ScopeKey{Kind: "applications", Param: "pending"}
}

// FetchFunc loads the authoritative value for a scope from the entity store.
type FetchFunc func(ctx context.Context) (any, error)

// ViewCache is the client-side consistency layer. Reads consult the cached
// view for a scope key and refetch when the entry is dirty or absent; writes
// never touch the cache directly but publish the set of scope keys they
// invalidate.
//
// Guarantees:
//   - Invalidate marks every given scope dirty before it returns, so a read
//     issued by the same caller right after a mutation resolves always
//     refetches
//   - A cancelled or superseded in-flight fetch never clears the dirty flag
//     and never overwrites a newer value
type ViewCache interface {
	// Read returns the cached value for the scope, fetching from the store
	// when the entry is dirty or absent. Errors from fetch are returned
	// without caching anything for the scope.
	Read(ctx context.Context, key ScopeKey, fetch FetchFunc) (any, error)

	// Invalidate marks every given scope dirty.
	Invalidate(keys ...ScopeKey)
}
