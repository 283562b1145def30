package commands_test

import (
	"testing"
	"time"

	"thumathina/internal/core/application/usecases/commands"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/domain/model/retailer"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cmdTime() time.Time {
	return time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
}

func availableListing(t *testing.T, retailerID kernel.UUID, unitPrice int64) *retailer.Listing {
	t.Helper()
	price, err := kernel.NewMoney(unitPrice)
	require.NoError(t, err)
	listing, err := retailer.NewListing(kernel.NewUUID(), retailerID, "6kg gas refill", price, true)
	require.NoError(t, err)
	return listing
}

func TestCreatePickupOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	retailerID := kernel.NewUUID()
	pickupPointID := kernel.NewUUID()
	listing := availableListing(t, retailerID, 80)
	line := testLine(t, listing.ID(), 2, 80)

	cmd, err := commands.NewCreatePickupOrderCommand(
		pickupPointActor(t, pickupPointID), retailerID, []order.Line{line}, line.Subtotal())
	require.NoError(t, err)

	stored, err := order.NewPickupOrder(
		kernel.NewUUID(), retailerID, pickupPointID,
		[]order.Line{line}, line.Subtotal(), cmdTime())
	require.NoError(t, err)

	store := new(MockEntityStore)
	var created *order.Order
	mock.InOrder(
		store.On("GetListings", ctx, retailerID).
			Return([]*retailer.Listing{listing}, nil).Once(),
		store.On("CreatePickupOrder", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).
			Return(stored, nil).Once(),
	)

	cache := new(MockViewCache)
	var invalidated []ports.ScopeKey
	cache.On("Invalidate", mock.Anything).Run(func(args mock.Arguments) {
		invalidated = args.Get(0).([]ports.ScopeKey)
	}).Once()

	h := commands.NewCreatePickupOrderCommandHandler(store, cache)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Placed, created.Status())
	require.NotNil(t, created.PickupPointID())
	assert.True(t, created.PickupPointID().IsEqual(pickupPointID))
	assert.True(t, got.ID().IsEqual(stored.ID()))
	assert.Contains(t, invalidated, ports.OrdersAllScope())
	assert.Contains(t, invalidated, ports.OrdersDriverEligibleScope())
	assert.Contains(t, invalidated, ports.OrdersRetailerScope(retailerID))
	assert.Contains(t, invalidated, ports.OrdersPickupPointScope(pickupPointID))
	assert.Contains(t, invalidated, ports.OrderDetailScope(stored.ID()))
	store.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreatePickupOrderCommandHandler_Handle_ActorWithoutPickupPoint(t *testing.T) {
	retailerID := kernel.NewUUID()
	line := testLine(t, kernel.NewUUID(), 1, 10)

	cmd, err := commands.NewCreatePickupOrderCommand(
		applicantActor(t), retailerID, []order.Line{line}, line.Subtotal())
	require.NoError(t, err)

	store := new(MockEntityStore)
	cache := new(MockViewCache)

	h := commands.NewCreatePickupOrderCommandHandler(store, cache)
	_, err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	store.AssertNotCalled(t, "GetListings", mock.Anything, mock.Anything)
}

func TestCreatePickupOrderCommandHandler_Handle_UnknownListing(t *testing.T) {
	ctx := t.Context()
	retailerID := kernel.NewUUID()
	line := testLine(t, kernel.NewUUID(), 1, 10)

	cmd, err := commands.NewCreatePickupOrderCommand(
		pickupPointActor(t, kernel.NewUUID()), retailerID, []order.Line{line}, line.Subtotal())
	require.NoError(t, err)

	store := new(MockEntityStore)
	store.On("GetListings", ctx, retailerID).Return([]*retailer.Listing{}, nil).Once()

	h := commands.NewCreatePickupOrderCommandHandler(store, new(MockViewCache))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	store.AssertNotCalled(t, "CreatePickupOrder", mock.Anything, mock.Anything)
}

func TestCreatePickupOrderCommandHandler_Handle_PriceDrift(t *testing.T) {
	ctx := t.Context()
	retailerID := kernel.NewUUID()
	listing := availableListing(t, retailerID, 90)
	line := testLine(t, listing.ID(), 1, 80) // stale client-side price

	cmd, err := commands.NewCreatePickupOrderCommand(
		pickupPointActor(t, kernel.NewUUID()), retailerID, []order.Line{line}, line.Subtotal())
	require.NoError(t, err)

	store := new(MockEntityStore)
	store.On("GetListings", ctx, retailerID).Return([]*retailer.Listing{listing}, nil).Once()

	h := commands.NewCreatePickupOrderCommandHandler(store, new(MockViewCache))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	store.AssertNotCalled(t, "CreatePickupOrder", mock.Anything, mock.Anything)
}

func TestCreatePickupOrderCommandHandler_Handle_UnavailableListing(t *testing.T) {
	ctx := t.Context()
	retailerID := kernel.NewUUID()
	price, err := kernel.NewMoney(80)
	require.NoError(t, err)
	listing, err := retailer.NewListing(kernel.NewUUID(), retailerID, "paraffin 5L", price, false)
	require.NoError(t, err)
	line := testLine(t, listing.ID(), 1, 80)

	cmd, err := commands.NewCreatePickupOrderCommand(
		pickupPointActor(t, kernel.NewUUID()), retailerID, []order.Line{line}, line.Subtotal())
	require.NoError(t, err)

	store := new(MockEntityStore)
	store.On("GetListings", ctx, retailerID).Return([]*retailer.Listing{listing}, nil).Once()

	h := commands.NewCreatePickupOrderCommandHandler(store, new(MockViewCache))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
