package queries

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery retrieves every order in the system regardless of
// status. Admin only.
//
// Example:
//
//	query, _ := NewListAllOrdersQuery(adminActor)
//	handler := NewListAllOrdersQueryHandler(store, cache)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type ListAllOrdersQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery creates a query for the admin all-orders view.
func NewListAllOrdersQuery(actor kernel.Actor) (ListAllOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAllOrdersQuery{}, err
	}

	return ListAllOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

// Actor returns the acting party.
func (q ListAllOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
