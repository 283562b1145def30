package cmd

import (
	"context"
	"log/slog"

	serverhttp "thumathina/internal/adapters/in/http"
	"thumathina/internal/adapters/out/kafka"
	"thumathina/internal/adapters/out/postgres"
	"thumathina/internal/core/application/usecases/commands"
	"thumathina/internal/core/application/usecases/queries"
	"thumathina/internal/core/application/viewcache"
	"thumathina/internal/core/domain/model/order"
	"thumathina/internal/core/ports"
	"thumathina/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters together. The entity store is the GORM
// store, optionally decorated with the order-changed producer when Kafka is
// configured; the view cache is shared by every handler the root creates.
type CompositionRoot struct {
	config    Config
	gormStore *postgres.GormEntityStore
	store     ports.EntityStore
	cache     *viewcache.Cache
	logger    *slog.Logger

	producer *kafka.OrderChangedProducer
	consumer *kafka.CheckoutConsumer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:    config,
		gormStore: postgres.NewGormEntityStore(gormDB),
		cache:     viewcache.NewCache(),
		logger:    logger,
	}
	root.store = root.gormStore

	if config.KafkaHost == "" {
		return root, nil
	}

	brokers := []string{config.KafkaHost}

	producer, err := kafka.NewOrderChangedProducer(brokers, config.KafkaOrderChangedTopic)
	if err != nil {
		return nil, err
	}
	root.producer = producer
	root.store = kafka.NewPublishingStore(root.gormStore, producer, logger)

	consumer, err := kafka.NewCheckoutConsumer(
		brokers,
		config.KafkaConsumerGroup,
		config.KafkaCheckoutConfirmedTopic,
		root.placeCheckoutOrder,
		logger,
	)
	if err != nil {
		return nil, err
	}
	root.consumer = consumer

	return root, nil
}

// Migrate creates or updates the store's tables.
func (c *CompositionRoot) Migrate() error {
	return c.gormStore.Migrate()
}

// Store returns the entity store every handler runs against.
func (c *CompositionRoot) Store() ports.EntityStore {
	return c.store
}

// Cache returns the shared view cache.
func (c *CompositionRoot) Cache() *viewcache.Cache {
	return c.cache
}

// CheckoutConsumer returns the checkout event consumer, or nil when Kafka
// is not configured.
func (c *CompositionRoot) CheckoutConsumer() *kafka.CheckoutConsumer {
	return c.consumer
}

// Close releases the root's long-lived connections.
func (c *CompositionRoot) Close() {
	if c.consumer != nil {
		if err := c.consumer.Close(); err != nil {
			c.logger.Error("Closing checkout consumer failed", "error", err)
		}
	}
	if c.producer != nil {
		if err := c.producer.Close(); err != nil {
			c.logger.Error("Closing order-changed producer failed", "error", err)
		}
	}
}

func (c *CompositionRoot) CreateSubmitApplicationCommandHandler() commands.SubmitApplicationCommandHandler {
	return commands.NewSubmitApplicationCommandHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateReviewApplicationCommandHandler() commands.ReviewApplicationCommandHandler {
	return commands.NewReviewApplicationCommandHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateCreatePickupOrderCommandHandler() commands.CreatePickupOrderCommandHandler {
	return commands.NewCreatePickupOrderCommandHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateListEligibleDriverOrdersQueryHandler() queries.ListEligibleDriverOrdersQueryHandler {
	return queries.NewListEligibleDriverOrdersQueryHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateGetMyRetailerOrdersQueryHandler() queries.GetMyRetailerOrdersQueryHandler {
	return queries.NewGetMyRetailerOrdersQueryHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateGetMyPickupPointOrdersQueryHandler() queries.GetMyPickupPointOrdersQueryHandler {
	return queries.NewGetMyPickupPointOrdersQueryHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateGetMyApplicationQueryHandler() queries.GetMyApplicationQueryHandler {
	return queries.NewGetMyApplicationQueryHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateGetMyStatusQueryHandler() queries.GetMyStatusQueryHandler {
	return queries.NewGetMyStatusQueryHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateListPendingApplicationsQueryHandler() queries.ListPendingApplicationsQueryHandler {
	return queries.NewListPendingApplicationsQueryHandler(c.store, c.cache)
}

func (c *CompositionRoot) CreateHTTPServer() *serverhttp.Server {
	return serverhttp.NewServer(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	spec := c.config.DriverOrdersRefreshSpec
	if spec == "" {
		spec = "*/5 * * * * *"
	}
	return jobs.NewJobManager(c.cache, spec, c.logger)
}

// placeCheckoutOrder persists an order decoded from a checkout-confirmed
// event. Creation goes through the GORM store directly: the event is the
// customer's checkout, not a role-gated mutation.
func (c *CompositionRoot) placeCheckoutOrder(ctx context.Context, o *order.Order) error {
	created, err := c.gormStore.CreateOrder(ctx, o)
	if err != nil {
		return err
	}

	c.cache.Invalidate(viewcache.InvalidationSet(viewcache.MutationCreatePickupOrder, viewcache.Effect{
		OrderID:       created.ID(),
		RetailerID:    created.RetailerID(),
		PickupPointID: created.PickupPointID(),
	})...)

	return nil
}
