package commands

import (
	"errors"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

var ErrReviewApplicationCommandIsNotConstructed = errors.New(
	"ReviewApplicationCommand must be created via NewReviewApplicationCommand constructor",
)

// ReviewApplicationCommand represents an admin verdict on a pending role
// application. A rejection must carry a human-readable reason; an approval
// carries none.
type ReviewApplicationCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	applicationID kernel.UUID
	decision      ports.ReviewDecision
	reason        string

	guard guard.ConstructorGuard
}

// NewReviewApplicationCommand creates a command to close a pending
// application. Validates the decision and requires a reason for rejections.
func NewReviewApplicationCommand(
	actor kernel.Actor,
	applicationID kernel.UUID,
	decision ports.ReviewDecision,
	reason string,
) (ReviewApplicationCommand, error) {
	cmd := ReviewApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setApplicationID(applicationID),
		cmd.setDecision(decision, reason),
	); err != nil {
		return ReviewApplicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewApplicationCommand) Validate() error {
	return c.guard.Validate(ErrReviewApplicationCommandIsNotConstructed)
}

// Actor returns the reviewing admin.
func (c ReviewApplicationCommand) Actor() kernel.Actor {
	return c.actor
}

// ApplicationID returns the application under review.
func (c ReviewApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// Decision returns the verdict.
func (c ReviewApplicationCommand) Decision() ports.ReviewDecision {
	return c.decision
}

// Reason returns the rejection reason; empty for approvals.
func (c ReviewApplicationCommand) Reason() string {
	return c.reason
}

func (c *ReviewApplicationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ReviewApplicationCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}

	c.applicationID = applicationID
	return nil
}

func (c *ReviewApplicationCommand) setDecision(decision ports.ReviewDecision, reason string) error {
	if !decision.Valid() {
		return errs.NewValueIsInvalidError("decision")
	}
	if decision == ports.DecisionRejected && reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.decision = decision
	c.reason = reason
	return nil
}
