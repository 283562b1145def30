package viewcache

import (
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/ports"
)

// Mutation identifies a write operation against the entity store.
type Mutation string

// List of mutations recognized by the invalidation rule table.
const (
	MutationSubmitApplication Mutation = "submitApplication"
	MutationReviewApplication Mutation = "reviewApplication"
	MutationUpdateOrderStatus Mutation = "updateOrderStatus"
	MutationCreatePickupOrder Mutation = "createPickupOrder"
)

// Effect carries the identities of the entities a mutation touched. Only
// the fields relevant to the mutation kind are consulted.
type Effect struct {
	// Application mutations
	Role      kernel.Role
	Applicant kernel.UUID

	// Order mutations
	OrderID       kernel.UUID
	RetailerID    kernel.UUID
	PickupPointID *kernel.UUID
}

// scopeRule derives zero or one scope key from a mutation's effect.
type scopeRule func(Effect) (ports.ScopeKey, bool)

func always(key ports.ScopeKey) scopeRule {
	return func(Effect) (ports.ScopeKey, bool) {
		return key, true
	}
}

// rules is the static table mapping each mutation to the scope keys it
// invalidates. The table is deterministic and exhaustively tested; a
// missing entry would silently reintroduce staleness bugs, so mutations
// must never compute their invalidation sets ad hoc.
var rules = map[Mutation][]scopeRule{
	MutationSubmitApplication: {
		func(e Effect) (ports.ScopeKey, bool) {
			return ports.ApplicationScope(e.Role, e.Applicant), true
		},
		always(ports.PendingApplicationsScope()),
	},
	MutationReviewApplication: {
		func(e Effect) (ports.ScopeKey, bool) {
			return ports.ApplicationScope(e.Role, e.Applicant), true
		},
		always(ports.PendingApplicationsScope()),
	},
	MutationUpdateOrderStatus: {
		always(ports.OrdersAllScope()),
		always(ports.OrdersDriverEligibleScope()),
		func(e Effect) (ports.ScopeKey, bool) {
			return ports.OrdersRetailerScope(e.RetailerID), true
		},
		func(e Effect) (ports.ScopeKey, bool) {
			if e.PickupPointID == nil {
				return ports.ScopeKey{}, false
			}
			return ports.OrdersPickupPointScope(*e.PickupPointID), true
		},
		func(e Effect) (ports.ScopeKey, bool) {
			return ports.OrderDetailScope(e.OrderID), true
		},
	},
	MutationCreatePickupOrder: {
		always(ports.OrdersAllScope()),
		always(ports.OrdersDriverEligibleScope()),
		func(e Effect) (ports.ScopeKey, bool) {
			return ports.OrdersRetailerScope(e.RetailerID), true
		},
		func(e Effect) (ports.ScopeKey, bool) {
			if e.PickupPointID == nil {
				return ports.ScopeKey{}, false
			}
			return ports.OrdersPickupPointScope(*e.PickupPointID), true
		},
		func(e Effect) (ports.ScopeKey, bool) {
			return ports.OrderDetailScope(e.OrderID), true
		},
	},
}

// InvalidationSet returns the scope keys the given mutation invalidates,
// derived from the static rule table. An unknown mutation yields an empty
// set; command handlers only ever pass the constants defined above.
func InvalidationSet(m Mutation, e Effect) []ports.ScopeKey {
	ruleSet := rules[m]
	keys := make([]ports.ScopeKey, 0, len(ruleSet))
	for _, rule := range ruleSet {
		if key, ok := rule(e); ok {
			keys = append(keys, key)
		}
	}
	return keys
}
