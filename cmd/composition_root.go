package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpin "quickcommerce/internal/adapters/in/http"
	"quickcommerce/internal/adapters/out/console"
	"quickcommerce/internal/adapters/out/file/counterrepo"
	"quickcommerce/internal/adapters/out/kafka"
	"quickcommerce/internal/adapters/out/memory"
	"quickcommerce/internal/adapters/out/memory/customerrepo"
	"quickcommerce/internal/adapters/out/memory/orderrepo"
	"quickcommerce/internal/adapters/out/memory/partnerrepo"
	pgcounterrepo "quickcommerce/internal/adapters/out/postgres/counterrepo"
	"quickcommerce/internal/core/application/usecases/commands"
	"quickcommerce/internal/core/application/usecases/queries"
	"quickcommerce/internal/core/domain/services"
	"quickcommerce/internal/core/ports"
	"quickcommerce/internal/jobs"
	"quickcommerce/internal/pkg/blockingqueue"
	"quickcommerce/internal/pkg/sequence"
)

const (
	orderIDBase = 1000

	// assignmentRetryDelay is how long the assignment worker backs off
	// before requeueing an order that found no available partner.
	assignmentRetryDelay = 100 * time.Millisecond
)

// CompositionRoot wires every adapter, use case and background job of
// the dispatch engine.
type CompositionRoot struct {
	logger *slog.Logger

	customers ports.CustomerRepository
	partners  ports.PartnerRepository
	orders    ports.OrderRepository

	uowFactory *memory.UnitOfWorkFactory

	orderSequence    *sequence.Sequence
	partnerSequence  *sequence.Sequence
	customerSequence *sequence.Sequence

	queue    *blockingqueue.Queue[int64]
	notifier ports.Notifier
	producer *kafka.SaramaProducer

	expiryScheduler *ExpirySchedulerRef
	jobManager      *jobs.JobManager
}

// ExpirySchedulerRef keeps the scheduler optional without nil interface
// pitfalls: a nil *jobs.ExpiryScheduler inside a non-nil interface value
// would dodge the callers' nil checks.
type ExpirySchedulerRef struct {
	scheduler *jobs.ExpiryScheduler
}

func (r *ExpirySchedulerRef) Schedule(orderID int64) {
	r.scheduler.Schedule(orderID)
}

func (r *ExpirySchedulerRef) Cancel(orderID int64) bool {
	return r.scheduler.Cancel(orderID)
}

// NewCompositionRoot builds the whole object graph from the config.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		logger:    logger,
		customers: customerrepo.NewRepository(),
		partners:  partnerrepo.NewRepository(),
		orders:    orderrepo.NewRepository(),
		queue:     blockingqueue.New[int64](),
	}
	root.uowFactory = memory.NewUnitOfWorkFactory(root.customers, root.partners, root.orders)

	counterStore, err := newCounterStore(config)
	if err != nil {
		return nil, err
	}

	root.orderSequence = sequence.New(ctx, "order_id", orderIDBase, counterStore, logger)
	root.partnerSequence = sequence.New(ctx, "partner_id", 0, counterStore, logger)
	root.customerSequence = sequence.New(ctx, "customer_id", 0, counterStore, logger)

	root.notifier = console.NewNotifier(os.Stdout, root.customers, logger)
	if config.KafkaHost != "" {
		producer, producerErr := kafka.NewSaramaProducer([]string{config.KafkaHost})
		if producerErr != nil {
			return nil, fmt.Errorf("failed to connect to kafka: %w", producerErr)
		}

		root.producer = producer
		root.notifier = kafka.NewNotifier(root.notifier, producer, config.KafkaNotificationsTopic, logger)
	}

	if config.AutoCancelEnabled {
		cancelHandler := root.CreateCancelOrderCommandHandler()
		root.expiryScheduler = &ExpirySchedulerRef{
			scheduler: jobs.NewExpiryScheduler(cancelHandler, config.OrderExpiry, logger),
		}
	}

	root.jobManager = root.createJobManager()

	return root, nil
}

func newCounterStore(config Config) (sequence.Store, error) {
	switch config.CounterBackend {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser,
			config.DBPassword, config.DBName, config.DBSslMode,
		)

		db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		store := pgcounterrepo.NewStore(db)
		if err = store.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate counters table: %w", err)
		}

		return store, nil
	default:
		return counterrepo.NewStore(config.CounterDir), nil
	}
}

func (c *CompositionRoot) CreateOnboardCustomerCommandHandler() commands.OnboardCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOnboardCustomerCommandHandler(f, c.customerSequence, c.notifier)
}

func (c *CompositionRoot) CreateOnboardPartnerCommandHandler() commands.OnboardPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOnboardPartnerCommandHandler(f, c.partnerSequence, c.notifier)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	var scheduler commands.ExpiryScheduler
	if c.expiryScheduler != nil {
		scheduler = c.expiryScheduler
	}

	return commands.NewCreateOrderCommandHandler(f, c.orderSequence, c.queue, c.notifier, scheduler)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.createUoWFactory(), c.queue, c.notifier)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdatePartnerStatusCommandHandler() commands.UpdatePartnerStatusCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetPartnerStatusQueryHandler() queries.GetPartnerStatusQueryHandler {
	return queries.NewGetPartnerStatusQueryHandler(c.partners)
}

func (c *CompositionRoot) CreateGetTopPartnersQueryHandler() queries.GetTopPartnersQueryHandler {
	return queries.NewGetTopPartnersQueryHandler(c.partners)
}

// CreateHTTPServer builds the inbound HTTP adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	var timers httpin.ExpiryTimers
	if c.expiryScheduler != nil {
		timers = c.expiryScheduler
	}

	return httpin.NewServer(
		c.CreateOnboardCustomerCommandHandler(),
		c.CreateOnboardPartnerCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreatePickUpOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateUpdatePartnerStatusCommandHandler(),
		c.CreateGetOrderStatusQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetPartnerStatusQueryHandler(),
		c.CreateGetTopPartnersQueryHandler(),
		timers,
	)
}

// StartJobs launches the background workers.
func (c *CompositionRoot) StartJobs() error {
	return c.jobManager.StartAll()
}

func (c *CompositionRoot) createJobManager() *jobs.JobManager {
	worker := jobs.NewAssignmentWorker(
		c.queue,
		c.createUoWFactory(),
		services.NewOrderDispatcher(),
		c.notifier,
		assignmentRetryDelay,
		c.logger,
	)

	checkpointJob := jobs.NewCounterCheckpointJob([]jobs.Checkpointer{
		c.orderSequence, c.partnerSequence, c.customerSequence,
	}, c.logger)

	var scheduler *jobs.ExpiryScheduler
	if c.expiryScheduler != nil {
		scheduler = c.expiryScheduler.scheduler
	}

	return jobs.NewJobManager(worker, scheduler, checkpointJob)
}

// Shutdown stops all background workers and persists the id counters.
func (c *CompositionRoot) Shutdown(ctx context.Context) error {
	c.jobManager.StopAll()

	err := errors.Join(
		c.orderSequence.Checkpoint(ctx),
		c.partnerSequence.Checkpoint(ctx),
		c.customerSequence.Checkpoint(ctx),
	)

	if c.producer != nil {
		err = errors.Join(err, c.producer.Close())
	}

	return err
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
