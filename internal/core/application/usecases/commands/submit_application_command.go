package commands

import (
	"errors"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

var ErrSubmitApplicationCommandIsNotConstructed = errors.New(
	"SubmitApplicationCommand must be created via NewSubmitApplicationCommand constructor",
)

// SubmitApplicationCommand represents a request to apply for a gated role.
// Carries the acting party, the role-specific payload, and the document
// references backing the application (at least the verification image).
//
// Example:
//
//	payload, _ := application.NewDriverPayload("T. Mokoena", "+27110000000", "scooter", "ND 123-456")
//	cmd, err := NewSubmitApplicationCommand(actor, payload, []kernel.UUID{imageRef})
//	if err != nil {
//	    return fmt.Errorf("invalid application: %w", err)
//	}
//
//	handler := NewSubmitApplicationCommandHandler(store, cache)
//	app, err := handler.Handle(ctx, cmd)
type SubmitApplicationCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	payload      application.Payload
	documentRefs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitApplicationCommand creates a command to submit a role application.
// Validates the actor, the payload's role-specific fields, and that at least
// one document reference is present.
func NewSubmitApplicationCommand(
	actor kernel.Actor,
	payload application.Payload,
	documentRefs []kernel.UUID,
) (SubmitApplicationCommand, error) {
	cmd := SubmitApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPayload(payload),
		cmd.setDocumentRefs(documentRefs),
	); err != nil {
		return SubmitApplicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitApplicationCommandIsNotConstructed)
}

// Actor returns the applicant.
func (c SubmitApplicationCommand) Actor() kernel.Actor {
	return c.actor
}

// Payload returns the role-specific application payload.
func (c SubmitApplicationCommand) Payload() application.Payload {
	return c.payload
}

// DocumentRefs returns the blob references backing the application.
func (c SubmitApplicationCommand) DocumentRefs() []kernel.UUID {
	return c.documentRefs
}

func (c *SubmitApplicationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SubmitApplicationCommand) setPayload(payload application.Payload) error {
	if payload == nil {
		return errs.NewValueIsRequiredError("payload")
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	c.payload = payload
	return nil
}

func (c *SubmitApplicationCommand) setDocumentRefs(documentRefs []kernel.UUID) error {
	if len(documentRefs) == 0 {
		return errs.NewValueIsRequiredError("documentRefs")
	}
	for _, ref := range documentRefs {
		if err := ref.Validate(); err != nil {
			return err
		}
	}

	c.documentRefs = documentRefs
	return nil
}
