package queries

import (
	"context"

	"thumathina/internal/core/ports"
)

// GetMyStatusQueryHandler serves the caller's application-status
// projection. The projection is derived from the full application view and
// reads through the same cache scope, so the two can never disagree.
type GetMyStatusQueryHandler struct {
	applications GetMyApplicationQueryHandler
}

// NewGetMyStatusQueryHandler creates a handler for the status projection.
func NewGetMyStatusQueryHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) GetMyStatusQueryHandler {
	return GetMyStatusQueryHandler{
		applications: NewGetMyApplicationQueryHandler(store, cache),
	}
}

// Handle returns the caller's application status for the role, or an
// absent projection when the caller never applied.
func (h GetMyStatusQueryHandler) Handle(
	ctx context.Context,
	query GetMyStatusQuery,
) (GetMyStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMyStatusQueryResponse{}, err
	}

	appQuery, err := NewGetMyApplicationQuery(query.Actor(), query.Role())
	if err != nil {
		return GetMyStatusQueryResponse{}, err
	}

	app, err := h.applications.Handle(ctx, appQuery)
	if err != nil {
		return GetMyStatusQueryResponse{}, err
	}
	if app == nil {
		return GetMyStatusQueryResponse{}, nil
	}

	return GetMyStatusQueryResponse{
		Applied: true,
		Status:  app.Status(),
	}, nil
}
