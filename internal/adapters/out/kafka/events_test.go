package kafka

import (
	"testing"
	"time"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutEvent(t *testing.T) CheckoutConfirmedEvent {
	t.Helper()
	return CheckoutConfirmedEvent{
		OrderID:    kernel.NewUUID().String(),
		RetailerID: kernel.NewUUID().String(),
		Lines: []CheckoutLine{
			{ListingID: kernel.NewUUID().String(), Qty: 2, UnitPrice: 45},
			{ListingID: kernel.NewUUID().String(), Qty: 1, UnitPrice: 30},
		},
		Total:       120,
		ConfirmedAt: time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC),
	}
}

func TestOrderFromCheckout_DeliveryOrder(t *testing.T) {
	e := checkoutEvent(t)

	o, err := orderFromCheckout(e)

	require.NoError(t, err)
	assert.Equal(t, e.OrderID, o.ID().String())
	assert.Equal(t, order.Placed, o.Status())
	assert.Nil(t, o.PickupPointID())
	assert.Equal(t, int64(120), o.Total().Amount())
	assert.Len(t, o.Lines(), 2)
}

func TestOrderFromCheckout_CollectionCheckoutBindsPickupPoint(t *testing.T) {
	e := checkoutEvent(t)
	pickupPointID := kernel.NewUUID()
	e.PickupPointID = pickupPointID.String()

	o, err := orderFromCheckout(e)

	require.NoError(t, err)
	require.NotNil(t, o.PickupPointID())
	assert.True(t, o.PickupPointID().IsEqual(pickupPointID))
}

func TestOrderFromCheckout_RejectsDriftedTotal(t *testing.T) {
	e := checkoutEvent(t)
	e.Total = 119

	_, err := orderFromCheckout(e)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderFromCheckout_RejectsMalformedIDs(t *testing.T) {
	e := checkoutEvent(t)
	e.OrderID = "not-a-uuid"

	_, err := orderFromCheckout(e)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderChangedFromDomain(t *testing.T) {
	pickupPointID := kernel.NewUUID()
	price, err := kernel.NewMoney(80)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	o, err := order.NewPickupOrder(
		kernel.NewUUID(), kernel.NewUUID(), pickupPointID,
		[]order.Line{line}, price,
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, o.Confirm(time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)))

	e := orderChangedFromDomain(o)

	assert.Equal(t, o.ID().String(), e.OrderID)
	assert.Equal(t, "confirmed", e.Status)
	assert.Equal(t, int64(80), e.Total)
	require.NotNil(t, e.PickupPointID)
	assert.Equal(t, pickupPointID.String(), *e.PickupPointID)
	assert.Nil(t, e.DriverID)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC), e.OccurredAt)
}
