package queries

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

var ErrGetMyApplicationQueryIsNotConstructed = errors.New(
	"GetMyApplicationQuery must be created via NewGetMyApplicationQuery constructor",
)

// GetMyApplicationQuery retrieves the acting party's most recent role
// application for one of the gated roles.
type GetMyApplicationQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor
	role  kernel.Role

	guard guard.ConstructorGuard
}

// NewGetMyApplicationQuery creates a query for the caller's application
// view. Only the gated roles — driver and pickup point — have applications.
func NewGetMyApplicationQuery(actor kernel.Actor, role kernel.Role) (GetMyApplicationQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyApplicationQuery{}, err
	}
	if role != kernel.RoleDriver && role != kernel.RolePickupPoint {
		return GetMyApplicationQuery{}, errs.NewValueIsInvalidError("role")
	}

	return GetMyApplicationQuery{
		actor: actor,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyApplicationQuery) Validate() error {
	return q.guard.Validate(ErrGetMyApplicationQueryIsNotConstructed)
}

// Actor returns the applicant.
func (q GetMyApplicationQuery) Actor() kernel.Actor {
	return q.actor
}

// Role returns the gated role the application is for.
func (q GetMyApplicationQuery) Role() kernel.Role {
	return q.role
}
