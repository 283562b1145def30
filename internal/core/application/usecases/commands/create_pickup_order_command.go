package commands

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

var ErrCreatePickupOrderCommandIsNotConstructed = errors.New(
	"CreatePickupOrderCommand must be created via NewCreatePickupOrderCommand constructor",
)

// CreatePickupOrderCommand represents a request to create an order at a
// pickup point on behalf of a walk-in customer. The acting party must be
// bound to a pickup point; the order is bound to it from the start.
type CreatePickupOrderCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	retailerID    kernel.UUID
	lines         []order.Line
	declaredTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewCreatePickupOrderCommand creates a command to place a walk-in order.
// Validates the actor, the retailer reference, and that at least one line
// is present; listing-level validation happens at handle time against the
// retailer's current listings.
func NewCreatePickupOrderCommand(
	actor kernel.Actor,
	retailerID kernel.UUID,
	lines []order.Line,
	declaredTotal kernel.Money,
) (CreatePickupOrderCommand, error) {
	cmd := CreatePickupOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRetailerID(retailerID),
		cmd.setLines(lines),
	); err != nil {
		return CreatePickupOrderCommand{}, err
	}

	cmd.declaredTotal = declaredTotal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickupOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupOrderCommandIsNotConstructed)
}

// Actor returns the acting pickup point operator.
func (c CreatePickupOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// RetailerID returns the retailer the order is placed against.
func (c CreatePickupOrderCommand) RetailerID() kernel.UUID {
	return c.retailerID
}

// Lines returns the order lines.
func (c CreatePickupOrderCommand) Lines() []order.Line {
	return c.lines
}

// DeclaredTotal returns the total the caller computed client-side; the
// order constructor re-checks it against the sum of the lines.
func (c CreatePickupOrderCommand) DeclaredTotal() kernel.Money {
	return c.declaredTotal
}

func (c *CreatePickupOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreatePickupOrderCommand) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return err
	}

	c.retailerID = retailerID
	return nil
}

func (c *CreatePickupOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	c.lines = lines
	return nil
}
