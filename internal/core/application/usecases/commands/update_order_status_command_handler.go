package commands

import (
	"context"

	"thumathina/internal/core/application/viewcache"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves orders through their lifecycle.
// The handler fast-fails illegal transitions and out-of-scope actors
// against the current order before asking the store, which re-checks both
// authoritatively; the store remains the single source of truth.
type UpdateOrderStatusCommandHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		store: store,
		cache: cache,
	}
}

// Handle transitions the order and invalidates every order view the change
// can be visible in: the admin list, the driver-eligible list, the owning
// retailer's and pickup point's lists, and the order detail.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.store.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !canMutateOrder(cmd.Actor(), current) {
		return nil, errs.NewAuthorizationError("updateOrderStatus")
	}

	if !current.Status().CanTransitionTo(cmd.NewStatus()) {
		return nil, errs.NewInvalidStateError(
			"order",
			current.Status().String(),
			cmd.NewStatus().String(),
		)
	}

	updated, err := h.store.UpdateOrderStatus(ctx, cmd.OrderID(), cmd.NewStatus())
	if err != nil {
		return nil, err
	}

	h.cache.Invalidate(viewcache.InvalidationSet(viewcache.MutationUpdateOrderStatus, viewcache.Effect{
		OrderID:       updated.ID(),
		RetailerID:    updated.RetailerID(),
		PickupPointID: updated.PickupPointID(),
	})...)

	return updated, nil
}

// canMutateOrder reports whether the actor's role gives write capability
// over the order's owning scope. Admins may always write; retailers and
// pickup points must own the order's scope; drivers must either already
// carry the order or be eligible to take it.
func canMutateOrder(actor kernel.Actor, o *order.Order) bool {
	if actor.IsAdmin() {
		return true
	}

	if actor.HasRole(kernel.RoleRetailer) &&
		actor.RetailerID() != nil &&
		actor.RetailerID().IsEqual(o.RetailerID()) {
		return true
	}

	if actor.HasRole(kernel.RolePickupPoint) &&
		actor.PickupPointID() != nil &&
		o.PickupPointID() != nil &&
		actor.PickupPointID().IsEqual(*o.PickupPointID()) {
		return true
	}

	if actor.HasRole(kernel.RoleDriver) {
		if o.DriverID() != nil && o.DriverID().IsEqual(actor.Identity()) {
			return true
		}
		if o.EligibleForDriver(actor.Identity()) {
			return true
		}
	}

	return false
}
