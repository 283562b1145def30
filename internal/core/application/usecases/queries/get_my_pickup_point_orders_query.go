package queries

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/guard"
)

var ErrGetMyPickupPointOrdersQueryIsNotConstructed = errors.New(
	"GetMyPickupPointOrdersQuery must be created via NewGetMyPickupPointOrdersQuery constructor",
)

// GetMyPickupPointOrdersQuery retrieves the orders bound to the acting
// pickup point.
type GetMyPickupPointOrdersQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetMyPickupPointOrdersQuery creates a query for the pickup point's
// order view.
func NewGetMyPickupPointOrdersQuery(actor kernel.Actor) (GetMyPickupPointOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyPickupPointOrdersQuery{}, err
	}

	return GetMyPickupPointOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyPickupPointOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyPickupPointOrdersQueryIsNotConstructed)
}

// Actor returns the acting pickup point operator.
func (q GetMyPickupPointOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
