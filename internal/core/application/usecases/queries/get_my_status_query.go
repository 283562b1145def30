package queries

import (
	"errors"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

var ErrGetMyStatusQueryIsNotConstructed = errors.New(
	"GetMyStatusQuery must be created via NewGetMyStatusQuery constructor",
)

// GetMyStatusQuery retrieves a lightweight projection of the acting
// party's application: just the status tag, plus the rejection reason when
// rejected.
type GetMyStatusQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor
	role  kernel.Role

	guard guard.ConstructorGuard
}

// NewGetMyStatusQuery creates a query for the caller's application status
// projection.
func NewGetMyStatusQuery(actor kernel.Actor, role kernel.Role) (GetMyStatusQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyStatusQuery{}, err
	}
	if role != kernel.RoleDriver && role != kernel.RolePickupPoint {
		return GetMyStatusQuery{}, errs.NewValueIsInvalidError("role")
	}

	return GetMyStatusQuery{
		actor: actor,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetMyStatusQueryIsNotConstructed)
}

// Actor returns the applicant.
func (q GetMyStatusQuery) Actor() kernel.Actor {
	return q.actor
}

// Role returns the gated role the status is asked for.
func (q GetMyStatusQuery) Role() kernel.Role {
	return q.role
}

// GetMyStatusQueryResponse is the status projection. Status is meaningful
// only when Applied is true.
type GetMyStatusQueryResponse struct {
	Applied bool
	Status  application.Status
}
