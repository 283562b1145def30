package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// HandleFunc persists one placed order decoded from a checkout-confirmed
// event. Returning an error makes the consumer redeliver the message, so
// implementations must be idempotent on the order id.
type HandleFunc func(context.Context, *order.Order) error

// CheckoutConsumer consumes checkout-confirmed events and turns each one
// into a placed order through the handler.
type CheckoutConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  *slog.Logger
}

// NewCheckoutConsumer joins the consumer group on the brokers. Reading starts
// from the oldest retained offset so orders placed while the service was down
// are not lost.
func NewCheckoutConsumer(
	brokers []string,
	groupID, topic string,
	h HandleFunc,
	logger *slog.Logger,
) (*CheckoutConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, errs.NewTransportErrorWithCause("kafka connect", err)
	}

	return &CheckoutConsumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger.With("component", "checkout_consumer"),
	}, nil
}

// Run consumes until the context is cancelled.
func (c *CheckoutConsumer) Run(ctx context.Context) error {
	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.ErrorContext(ctx, "Consuming checkout events failed", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close leaves the consumer group.
func (c *CheckoutConsumer) Close() error {
	return c.group.Close()
}

type groupHandler struct{ c *CheckoutConsumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		o, err := decodeCheckout(msg.Value)
		if err != nil {
			// a malformed event never becomes valid, skip it
			h.c.logger.Error("Dropping malformed checkout event",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), o); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				// redelivery of an order that already exists
				sess.MarkMessage(msg, "")
				continue
			}
			h.c.logger.Error("Handling checkout event failed, will retry",
				"orderId", o.ID().String(), "error", err)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}

func decodeCheckout(value []byte) (*order.Order, error) {
	var e CheckoutConfirmedEvent
	if err := json.Unmarshal(value, &e); err != nil {
		return nil, err
	}
	return orderFromCheckout(e)
}
