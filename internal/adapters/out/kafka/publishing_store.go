package kafka

import (
	"context"
	"log/slog"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
)

// PublishingStore decorates an entity store so that every successful order
// mutation is announced on the order-changed topic. Publishing happens after
// the store commits; a publish failure is logged, not surfaced, because the
// mutation itself already succeeded.
type PublishingStore struct {
	ports.EntityStore
	producer *OrderChangedProducer
	logger   *slog.Logger
}

// NewPublishingStore wraps the store with the producer.
func NewPublishingStore(
	store ports.EntityStore,
	producer *OrderChangedProducer,
	logger *slog.Logger,
) *PublishingStore {
	return &PublishingStore{
		EntityStore: store,
		producer:    producer,
		logger:      logger.With("component", "order_changed_producer"),
	}
}

func (s *PublishingStore) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) (*order.Order, error) {
	updated, err := s.EntityStore.UpdateOrderStatus(ctx, orderID, newStatus)
	if err != nil {
		return nil, err
	}

	s.publish(updated)
	return updated, nil
}

func (s *PublishingStore) CreatePickupOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	created, err := s.EntityStore.CreatePickupOrder(ctx, o)
	if err != nil {
		return nil, err
	}

	s.publish(created)
	return created, nil
}

func (s *PublishingStore) publish(o *order.Order) {
	if err := s.producer.PublishOrderChanged(o); err != nil {
		s.logger.Error("Publishing order change failed",
			"orderId", o.ID().String(), "status", o.Status().String(), "error", err)
	}
}
