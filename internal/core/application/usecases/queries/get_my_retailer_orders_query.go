package queries

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/guard"
)

var ErrGetMyRetailerOrdersQueryIsNotConstructed = errors.New(
	"GetMyRetailerOrdersQuery must be created via NewGetMyRetailerOrdersQuery constructor",
)

// GetMyRetailerOrdersQuery retrieves the orders referencing the acting
// retailer.
type GetMyRetailerOrdersQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetMyRetailerOrdersQuery creates a query for the retailer's order view.
func NewGetMyRetailerOrdersQuery(actor kernel.Actor) (GetMyRetailerOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyRetailerOrdersQuery{}, err
	}

	return GetMyRetailerOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyRetailerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyRetailerOrdersQueryIsNotConstructed)
}

// Actor returns the acting retailer.
func (q GetMyRetailerOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
