package application

import (
	"errors"
	"time"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
	"thumathina/internal/pkg/guard"
)

// ErrApplicationIsNotConstructed is returned when an Application was not
// created through NewApplication or RestoreApplication.
var ErrApplicationIsNotConstructed = errors.New(
	"Application must be created via NewApplication or RestoreApplication")

// Application is a role application: a submitted request by a user to be
// granted the Driver or Pickup Point role, subject to admin review.
//
// One shared envelope serves both roles; the role-specific evidence lives in
// the tagged Payload variant. Invariants:
//   - At most one application per (identity, role) may be pending at a time;
//     the entity store enforces this with a conflict error on submission
//   - At least one document reference (verification image) is required
//   - Once approved or rejected the record is immutable; resubmission after
//     rejection creates a fresh pending record, the old one is retained
//     for audit
type Application struct {
	id           kernel.UUID
	applicant    kernel.UUID
	payload      Payload
	documentRefs []kernel.UUID
	status       Status
	submittedAt  time.Time
	reviewedAt   *time.Time

	guard guard.ConstructorGuard
}

// NewApplication creates a pending application for the given applicant.
//
// documentRefs are opaque references into the content-addressable blob store;
// at least one is required (the verification image). The payload carries the
// role and its role-specific required fields.
func NewApplication(
	id kernel.UUID,
	applicant kernel.UUID,
	payload Payload,
	documentRefs []kernel.UUID,
	now time.Time,
) (*Application, error) {
	a := &Application{
		status: StatusPending(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setApplicant(applicant),
		a.setPayload(payload),
		a.setDocumentRefs(documentRefs),
	); err != nil {
		return nil, err
	}

	a.submittedAt = now
	return a, nil
}

// RestoreApplication reconstructs an application aggregate from persistence.
func RestoreApplication(
	id kernel.UUID,
	applicant kernel.UUID,
	payload Payload,
	documentRefs []kernel.UUID,
	status Status,
	submittedAt time.Time,
	reviewedAt *time.Time,
) (*Application, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	a, err := NewApplication(id, applicant, payload, documentRefs, submittedAt)
	if err != nil {
		return nil, err
	}

	a.status = status
	a.reviewedAt = reviewedAt
	return a, nil
}

// Validate ensures the Application was properly constructed through a factory.
func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// Applicant returns the caller identity that submitted the application.
func (a *Application) Applicant() kernel.UUID {
	return a.applicant
}

// Role returns the role applied for, derived from the payload variant.
func (a *Application) Role() kernel.Role {
	return a.payload.Role()
}

// Payload returns the role-specific evidence.
func (a *Application) Payload() Payload {
	return a.payload
}

// DocumentRefs returns the opaque blob references attached at submission.
func (a *Application) DocumentRefs() []kernel.UUID {
	return append([]kernel.UUID(nil), a.documentRefs...)
}

// Status returns the current review state.
func (a *Application) Status() Status {
	return a.status
}

// SubmittedAt returns the submission timestamp.
func (a *Application) SubmittedAt() time.Time {
	return a.submittedAt
}

// ReviewedAt returns the review timestamp, or nil while pending.
func (a *Application) ReviewedAt() *time.Time {
	return a.reviewedAt
}

// Approve transitions a pending application to approved.
// Returns *errs.InvalidStateError when the application is not pending.
func (a *Application) Approve(now time.Time) error {
	if !a.status.IsPending() {
		return errs.NewInvalidStateError("application", a.status.String(), StatusApproved().String())
	}

	a.status = StatusApproved()
	a.reviewedAt = &now
	return nil
}

// Reject transitions a pending application to rejected with the mandatory
// reason. Returns *errs.InvalidStateError when the application is not
// pending and a validation error when the reason is empty.
func (a *Application) Reject(reason string, now time.Time) error {
	rejected, err := StatusRejected(reason)
	if err != nil {
		return err
	}

	if !a.status.IsPending() {
		return errs.NewInvalidStateError("application", a.status.String(), rejected.String())
	}

	a.status = rejected
	a.reviewedAt = &now
	return nil
}

// Resubmit creates a fresh pending application from a rejected one, carrying
// a new payload and document set. The original record is left untouched for
// audit. Returns *errs.InvalidStateError when this application is not
// rejected.
func (a *Application) Resubmit(
	id kernel.UUID,
	payload Payload,
	documentRefs []kernel.UUID,
	now time.Time,
) (*Application, error) {
	if !a.status.IsRejected() {
		return nil, errs.NewInvalidStateError("application", a.status.String(), StatusPending().String())
	}

	if payload.Role() != a.Role() {
		return nil, errs.NewValueIsInvalidError("payload role differs from the original application")
	}

	return NewApplication(id, a.applicant, payload, documentRefs, now)
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setApplicant(applicant kernel.UUID) error {
	if err := applicant.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("applicant", err)
	}
	a.applicant = applicant
	return nil
}

func (a *Application) setPayload(payload Payload) error {
	if payload == nil {
		return errs.NewValueIsRequiredError("payload")
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	a.payload = payload
	return nil
}

func (a *Application) setDocumentRefs(documentRefs []kernel.UUID) error {
	if len(documentRefs) == 0 {
		return errs.NewValueIsRequiredError("documentRefs")
	}

	for _, ref := range documentRefs {
		if err := ref.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("documentRefs", err)
		}
	}

	a.documentRefs = append([]kernel.UUID(nil), documentRefs...)
	return nil
}
