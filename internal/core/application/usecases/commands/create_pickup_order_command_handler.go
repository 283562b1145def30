package commands

import (
	"context"
	"time"

	"thumathina/internal/core/application/viewcache"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/model/retailer"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"
)

// CreatePickupOrderCommandHandler places orders for walk-in customers at a
// pickup point. Every line must reference a live listing of the target
// retailer at the listing's current price.
type CreatePickupOrderCommandHandler struct {
	store ports.EntityStore
	cache ports.ViewCache
	now   func() time.Time
}

// NewCreatePickupOrderCommandHandler creates a handler for walk-in order
// placement.
func NewCreatePickupOrderCommandHandler(
	store ports.EntityStore,
	cache ports.ViewCache,
) CreatePickupOrderCommandHandler {
	return CreatePickupOrderCommandHandler{
		store: store,
		cache: cache,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Handle validates the lines against the retailer's listings, persists the
// order in Placed status bound to the actor's pickup point, and invalidates
// the order views the new order appears in.
func (h CreatePickupOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePickupOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.HasRole(kernel.RolePickupPoint) || actor.PickupPointID() == nil {
		return nil, errs.NewAuthorizationError("createPickupOrder")
	}

	listings, err := h.store.GetListings(ctx, cmd.RetailerID())
	if err != nil {
		return nil, err
	}

	if err := checkLinesAgainstListings(cmd.Lines(), listings); err != nil {
		return nil, err
	}

	o, err := order.NewPickupOrder(
		kernel.NewUUID(),
		cmd.RetailerID(),
		*actor.PickupPointID(),
		cmd.Lines(),
		cmd.DeclaredTotal(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	created, err := h.store.CreatePickupOrder(ctx, o)
	if err != nil {
		return nil, err
	}

	h.cache.Invalidate(viewcache.InvalidationSet(viewcache.MutationCreatePickupOrder, viewcache.Effect{
		OrderID:       created.ID(),
		RetailerID:    created.RetailerID(),
		PickupPointID: created.PickupPointID(),
	})...)

	return created, nil
}

// checkLinesAgainstListings requires every line to reference an available
// listing at the listing's current unit price.
func checkLinesAgainstListings(lines []order.Line, listings []*retailer.Listing) error {
	byID := make(map[kernel.UUID]*retailer.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID()] = l
	}

	for _, line := range lines {
		listing, ok := byID[line.ListingID()]
		if !ok {
			return errs.NewObjectNotFoundError("listingId", line.ListingID())
		}
		if !listing.Available() {
			return errs.NewValueIsInvalidError("listingId")
		}
		if !line.UnitPrice().IsEqual(listing.UnitPrice()) {
			return errs.NewValueIsInvalidError("unitPrice")
		}
	}

	return nil
}
