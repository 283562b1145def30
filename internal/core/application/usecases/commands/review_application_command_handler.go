package commands

import (
	"context"

	"thumathina/internal/core/application/viewcache"
	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// ReviewApplicationCommandHandler closes pending role applications with an
// admin's verdict. Only admins may review; the store enforces that the
// application is still pending.
type ReviewApplicationCommandHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
}

// NewReviewApplicationCommandHandler creates a handler for application review.
func NewReviewApplicationCommandHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) ReviewApplicationCommandHandler {
	return ReviewApplicationCommandHandler{
		store: store,
		cache: cache,
	}
}

// Handle records the verdict and invalidates the applicant's application
// scope plus the admin review inbox, so either decision surfaces on the
// very next read of those views.
func (h ReviewApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd ReviewApplicationCommand,
) (*application.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsAdmin() {
		return nil, errs.NewAuthorizationError("reviewApplication")
	}

	reviewed, err := h.store.ReviewApplication(ctx, cmd.ApplicationID(), cmd.Decision(), cmd.Reason())
	if err != nil {
		return nil, err
	}

	h.cache.Invalidate(viewcache.InvalidationSet(viewcache.MutationReviewApplication, viewcache.Effect{
		Role:      reviewed.Role(),
		Applicant: reviewed.Applicant(),
	})...)

	return reviewed, nil
}
