package queries

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/guard"
)

var ErrListEligibleDriverOrdersQueryIsNotConstructed = errors.New(
	"ListEligibleDriverOrdersQuery must be created via NewListEligibleDriverOrdersQuery constructor",
)

// ListEligibleDriverOrdersQuery retrieves the orders the acting driver may
// take or is currently carrying.
type ListEligibleDriverOrdersQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewListEligibleDriverOrdersQuery creates a query for the driver-eligible
// order view.
func NewListEligibleDriverOrdersQuery(actor kernel.Actor) (ListEligibleDriverOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListEligibleDriverOrdersQuery{}, err
	}

	return ListEligibleDriverOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListEligibleDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListEligibleDriverOrdersQueryIsNotConstructed)
}

// Actor returns the acting driver.
func (q ListEligibleDriverOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
