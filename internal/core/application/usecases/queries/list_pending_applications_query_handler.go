package queries

import (
	"context"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// ListPendingApplicationsQueryHandler serves the admin review inbox
// through the view cache.
type ListPendingApplicationsQueryHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
}

// NewListPendingApplicationsQueryHandler creates a handler for the review
// inbox.
func NewListPendingApplicationsQueryHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) ListPendingApplicationsQueryHandler {
	return ListPendingApplicationsQueryHandler{
		store: store,
		cache: cache,
	}
}

// Handle returns every application awaiting review. Non-admin callers are
// rejected before the cache is consulted.
func (h ListPendingApplicationsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingApplicationsQuery,
) ([]*application.Application, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewAuthorizationError("listPendingApplications")
	}

	value, err := h.cache.Read(ctx, ports.PendingApplicationsScope(), func(ctx context.Context) (any, error) {
		return h.store.ListPendingApplications(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.([]*application.Application), nil
}
