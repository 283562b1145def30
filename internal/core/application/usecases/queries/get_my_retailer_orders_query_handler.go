package queries

import (
	"context"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// GetMyRetailerOrdersQueryHandler serves a retailer's order view through
// the view cache. The actor must be bound to a retailer.
type GetMyRetailerOrdersQueryHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
}

// NewGetMyRetailerOrdersQueryHandler creates a handler for the retailer
// order list.
func NewGetMyRetailerOrdersQueryHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) GetMyRetailerOrdersQueryHandler {
	return GetMyRetailerOrdersQueryHandler{
		store: store,
		cache: cache,
	}
}

// Handle returns the orders referencing the acting retailer.
func (h GetMyRetailerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyRetailerOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.HasRole(kernel.RoleRetailer) || actor.RetailerID() == nil {
		return nil, errs.NewAuthorizationError("getMyRetailerOrders")
	}

	retailerID := *actor.RetailerID()
	value, err := h.cache.Read(ctx, ports.OrdersRetailerScope(retailerID), func(ctx context.Context) (any, error) {
		return h.store.GetRetailerOrders(ctx, retailerID)
	})
	if err != nil {
		return nil, err
	}

	return value.([]*order.Order), nil
}
