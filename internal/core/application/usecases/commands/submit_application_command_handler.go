package commands

import (
	"context"
	"time"

	"thumathina/internal/core/application/viewcache"
	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/ports"
)

// SubmitApplicationCommandHandler handles role application submission.
// The store decides between a fresh submission and a resubmission after
// rejection; a pending or approved application for the same role conflicts.
//
// Example:
//
//	handler := NewSubmitApplicationCommandHandler(store, cache)
//	cmd, _ := NewSubmitApplicationCommand(actor, payload, docRefs)
//
//	app, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("application submission failed: %w", err)
//	}
//	fmt.Printf("Application %s is %s", app.ID(), app.Status())
type SubmitApplicationCommandHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
	now   func() time.Time
}

// NewSubmitApplicationCommandHandler creates a handler for application
// submission. Requires the entity store and the caller's view cache.
func NewSubmitApplicationCommandHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) SubmitApplicationCommandHandler {
	return SubmitApplicationCommandHandler{
		store: store,
		cache: cache,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Handle submits a pending application for the acting party and, once the
// store accepts it, invalidates the applicant's application scope and the
// admin review inbox.
func (h SubmitApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitApplicationCommand,
) (*application.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	app, err := application.NewApplication(
		kernel.NewUUID(),
		cmd.Actor().Identity(),
		cmd.Payload(),
		cmd.DocumentRefs(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	stored, err := h.store.SubmitApplication(ctx, app)
	if err != nil {
		return nil, err
	}

	h.cache.Invalidate(viewcache.InvalidationSet(viewcache.MutationSubmitApplication, viewcache.Effect{
		Role:      stored.Role(),
		Applicant: stored.Applicant(),
	})...)

	return stored, nil
}
