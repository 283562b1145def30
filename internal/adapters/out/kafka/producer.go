package kafka

import (
	"encoding/json"
	"time"

	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// OrderChangedProducer publishes OrderChangedEvent messages. Messages are
// keyed by order id so every event of one order lands on one partition and
// consumers observe its status changes in order.
type OrderChangedProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewOrderChangedProducer connects a synchronous producer to the brokers.
func NewOrderChangedProducer(brokers []string, topic string) (*OrderChangedProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, errs.NewTransportErrorWithCause("kafka connect", err)
	}

	return NewOrderChangedProducerFromClient(producer, topic), nil
}

// NewOrderChangedProducerFromClient wraps an existing producer.
func NewOrderChangedProducerFromClient(producer sarama.SyncProducer, topic string) *OrderChangedProducer {
	return &OrderChangedProducer{producer: producer, topic: topic}
}

// PublishOrderChanged emits the order's current state as an event.
func (p *OrderChangedProducer) PublishOrderChanged(o *order.Order) error {
	value, err := json.Marshal(orderChangedFromDomain(o))
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(o.ID().String()),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return errs.NewTransportErrorWithCause("kafka publish "+p.topic, err)
	}

	return nil
}

// Close shuts the underlying producer down.
func (p *OrderChangedProducer) Close() error {
	return p.producer.Close()
}
