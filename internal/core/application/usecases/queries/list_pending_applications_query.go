package queries

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/guard"
)

var ErrListPendingApplicationsQueryIsNotConstructed = errors.New(
	"ListPendingApplicationsQuery must be created via NewListPendingApplicationsQuery constructor",
)

// ListPendingApplicationsQuery retrieves the admin review inbox: every
// role application awaiting a verdict.
type ListPendingApplicationsQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewListPendingApplicationsQuery creates a query for the review inbox.
func NewListPendingApplicationsQuery(actor kernel.Actor) (ListPendingApplicationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListPendingApplicationsQuery{}, err
	}

	return ListPendingApplicationsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPendingApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingApplicationsQueryIsNotConstructed)
}

// Actor returns the acting admin.
func (q ListPendingApplicationsQuery) Actor() kernel.Actor {
	return q.actor
}
