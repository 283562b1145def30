package queries

import (
	"context"

	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// ListAllOrdersQueryHandler serves the admin all-orders view through the
// view cache.
type ListAllOrdersQueryHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
}

// NewListAllOrdersQueryHandler creates a handler for the admin order list.
func NewListAllOrdersQueryHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{
		store: store,
		cache: cache,
	}
}

// Handle returns every order. Non-admin callers are rejected before the
// cache is consulted.
func (h ListAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAllOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewAuthorizationError("listAllOrders")
	}

	value, err := h.cache.Read(ctx, ports.OrdersAllScope(), func(ctx context.Context) (any, error) {
		return h.store.ListAllOrders(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.([]*order.Order), nil
}
