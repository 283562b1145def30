package kernel

import (
	"fmt"

	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

// Role identifies a capability a caller holds on the platform.
type Role string

// List of platform roles.
const (
	RoleCustomer    Role = "customer"
	RoleRetailer    Role = "retailer"
	RoleDriver      Role = "driver"
	RolePickupPoint Role = "pickup_point"
	RoleAdmin       Role = "admin"
)

var allowedRoles = [...]Role{
	RoleCustomer, RoleRetailer, RoleDriver, RolePickupPoint, RoleAdmin,
}

// Valid checks if the Role is one of the defined platform roles.
func (r Role) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"Actor must be created via NewActor constructor")

// Actor is the caller-identity capability passed explicitly into every
// operation of the core. It carries the caller's identity and role set,
// plus the retailer or pickup point the caller operates, when applicable.
//
// Actor is never held as ambient global state; operations receive it as a
// parameter so the core stays testable without a simulated session.
//
// Example:
//
//	admin, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
//	if admin.IsAdmin() {
//	    // admin-only operation permitted
//	}
type Actor struct {
	identity      UUID
	roles         []Role
	retailerID    *UUID
	pickupPointID *UUID

	guard guard.ConstructorGuard
}

// NewActor creates an Actor for the given identity holding the given roles.
// At least one valid role is required.
func NewActor(identity UUID, roles ...Role) (Actor, error) {
	if err := identity.Validate(); err != nil {
		return Actor{}, err
	}

	if len(roles) == 0 {
		return Actor{}, errs.NewValueIsRequiredError("roles")
	}

	for _, r := range roles {
		if !r.Valid() {
			return Actor{}, errs.NewValueIsInvalidErrorWithCause("role",
				fmt.Errorf("%q is not a platform role", string(r)))
		}
	}

	return Actor{
		identity: identity,
		roles:    append([]Role(nil), roles...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// WithRetailer returns a copy of the actor bound to the retailer it operates.
func (a Actor) WithRetailer(retailerID UUID) Actor {
	a.retailerID = &retailerID
	return a
}

// WithPickupPoint returns a copy of the actor bound to the pickup point it operates.
func (a Actor) WithPickupPoint(pickupPointID UUID) Actor {
	a.pickupPointID = &pickupPointID
	return a
}

// Identity returns the caller's identity.
func (a Actor) Identity() UUID {
	return a.identity
}

// Roles returns the roles the caller holds.
func (a Actor) Roles() []Role {
	return append([]Role(nil), a.roles...)
}

// HasRole reports whether the caller holds the given role.
func (a Actor) HasRole(role Role) bool {
	for _, r := range a.roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the caller holds the admin capability.
func (a Actor) IsAdmin() bool {
	return a.HasRole(RoleAdmin)
}

// RetailerID returns the retailer the caller operates, or nil.
func (a Actor) RetailerID() *UUID {
	return a.retailerID
}

// PickupPointID returns the pickup point the caller operates, or nil.
func (a Actor) PickupPointID() *UUID {
	return a.pickupPointID
}

// Validate checks that the Actor was properly constructed via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
