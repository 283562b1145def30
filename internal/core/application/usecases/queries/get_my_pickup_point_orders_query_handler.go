package queries

import (
	"context"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// GetMyPickupPointOrdersQueryHandler serves a pickup point's order view
// through the view cache. The actor must be bound to a pickup point.
type GetMyPickupPointOrdersQueryHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
}

// NewGetMyPickupPointOrdersQueryHandler creates a handler for the pickup
// point order list.
func NewGetMyPickupPointOrdersQueryHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) GetMyPickupPointOrdersQueryHandler {
	return GetMyPickupPointOrdersQueryHandler{
		store: store,
		cache: cache,
	}
}

// Handle returns the orders bound to the acting pickup point.
func (h GetMyPickupPointOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyPickupPointOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.HasRole(kernel.RolePickupPoint) || actor.PickupPointID() == nil {
		return nil, errs.NewAuthorizationError("getMyPickupPointOrders")
	}

	pickupPointID := *actor.PickupPointID()
	value, err := h.cache.Read(ctx, ports.OrdersPickupPointScope(pickupPointID), func(ctx context.Context) (any, error) {
		return h.store.GetPickupPointOrders(ctx, pickupPointID)
	})
	if err != nil {
		return nil, err
	}

	return value.([]*order.Order), nil
}
