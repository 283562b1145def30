package queries

import (
	"context"
	"errors"

	"thumathina/internal/core/domain/model/application"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// GetMyApplicationQueryHandler serves the caller's role-application view
// through the view cache. Absence is cached too: a caller who never applied
// gets a nil application without refetching on every read, and a later
// submission invalidates the same scope.
type GetMyApplicationQueryHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
}

// NewGetMyApplicationQueryHandler creates a handler for the caller's
// application view.
func NewGetMyApplicationQueryHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) GetMyApplicationQueryHandler {
	return GetMyApplicationQueryHandler{
		store: store,
		cache: cache,
	}
}

// Handle returns the caller's most recent application for the role, or nil
// when none is on file.
func (h GetMyApplicationQueryHandler) Handle(
	ctx context.Context,
	query GetMyApplicationQuery,
) (*application.Application, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := ports.ApplicationScope(query.Role(), query.Actor().Identity())
	value, err := h.cache.Read(ctx, scope, func(ctx context.Context) (any, error) {
		app, err := h.store.GetApplication(ctx, query.Role(), query.Actor().Identity())
		if err != nil {
			var notFound *errs.ObjectNotFoundError
			if errors.As(err, &notFound) {
				return (*application.Application)(nil), nil
			}
			return nil, err
		}
		return app, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*application.Application), nil
}
