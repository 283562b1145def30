package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mutationStore stubs just the two mutating operations the decorator wraps.
type mutationStore struct {
	ports.EntityStore

	updateOrder *order.Order
	updateErr   error
}

func (s *mutationStore) UpdateOrderStatus(
	context.Context,
	kernel.UUID,
	order.Status,
) (*order.Order, error) {
	return s.updateOrder, s.updateErr
}

func (s *mutationStore) CreatePickupOrder(_ context.Context, o *order.Order) (*order.Order, error) {
	return o, s.updateErr
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(50)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	o, err := order.NewPickupOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Line{line}, price,
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, o.Confirm(time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC)))
	return o
}

func TestPublishingStore_PublishesAfterStatusUpdate(t *testing.T) {
	o := confirmedOrder(t)
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var e OrderChangedEvent
		if err := json.Unmarshal(value, &e); err != nil {
			return err
		}
		assert.Equal(t, o.ID().String(), e.OrderID)
		assert.Equal(t, "confirmed", e.Status)
		return nil
	})

	store := NewPublishingStore(
		&mutationStore{updateOrder: o},
		NewOrderChangedProducerFromClient(producer, "order-changed"),
		discardLogger(),
	)

	updated, err := store.UpdateOrderStatus(context.Background(), o.ID(), order.Confirmed)

	require.NoError(t, err)
	assert.True(t, updated.IsEqual(o))
	require.NoError(t, producer.Close())
}

func TestPublishingStore_FailedMutationPublishesNothing(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)

	store := NewPublishingStore(
		&mutationStore{updateErr: errs.NewConflictError("order was modified concurrently")},
		NewOrderChangedProducerFromClient(producer, "order-changed"),
		discardLogger(),
	)

	_, err := store.UpdateOrderStatus(context.Background(), kernel.NewUUID(), order.Confirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, producer.Close())
}

func TestPublishingStore_PublishFailureDoesNotFailTheMutation(t *testing.T) {
	o := confirmedOrder(t)
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	store := NewPublishingStore(
		&mutationStore{updateOrder: o},
		NewOrderChangedProducerFromClient(producer, "order-changed"),
		discardLogger(),
	)

	updated, err := store.UpdateOrderStatus(context.Background(), o.ID(), order.Confirmed)

	require.NoError(t, err)
	assert.True(t, updated.IsEqual(o))
	require.NoError(t, producer.Close())
}
