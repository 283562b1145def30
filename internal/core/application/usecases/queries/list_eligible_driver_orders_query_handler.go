package queries

import (
	"context"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/services"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// ListEligibleDriverOrdersQueryHandler serves the driver-eligible order
// view. The cached set is re-filtered through the eligibility service on
// every read: the background refresh keeps the set roughly current, the
// filter keeps it exact for the acting driver.
type ListEligibleDriverOrdersQueryHandler struct {
	store       ports.EntityStore
	cache       ports.ViewCache
	eligibility services.DriverEligibility
}

// NewListEligibleDriverOrdersQueryHandler creates a handler for the
// driver-eligible order list.
func NewListEligibleDriverOrdersQueryHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) ListEligibleDriverOrdersQueryHandler {
	return ListEligibleDriverOrdersQueryHandler{
		store:       store,
		cache:       cache,
		eligibility: services.NewDriverEligibility(),
	}
}

// Handle returns the orders the driver may take or already carries.
func (h ListEligibleDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListEligibleDriverOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.HasRole(kernel.RoleDriver) && !actor.IsAdmin() {
		return nil, errs.NewAuthorizationError("listEligibleDriverOrders")
	}

	value, err := h.cache.Read(ctx, ports.OrdersDriverEligibleScope(), func(ctx context.Context) (any, error) {
		return h.store.ListEligibleDriverOrders(ctx, actor.Identity())
	})
	if err != nil {
		return nil, err
	}

	return h.eligibility.EligibleOrders(value.([]*order.Order), actor.Identity()), nil
}
