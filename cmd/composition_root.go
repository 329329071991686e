package cmd

import (
	"context"
	"log/slog"

	"shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
	"shop/internal/jobs"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler, the HTTP router and the job manager
// from one database handle and one metrics registry.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot creates the metrics registry and a unit-of-work factory
// whose commits are reported to it.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	m := metrics.New()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, committedAggregateMetrics{metrics: m}),
		metrics:    m,
		logger:     logger,
	}
}

// Metrics returns the registry shared by the router, the jobs and the unit of work.
func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// CreateRegisterUserCommandHandler returns a handler bound to a fresh unit of work per call.
func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

// CreateCreateOrderCommandHandler returns a handler that needs both the user
// and the order repository in one unit of work.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateAddOrderItemCommandHandler returns the add-item handler.
func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
}

// CreateChangeOrderStatusCommandHandler returns the handler behind pay, cancel, ship and complete.
func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

// CreateExpireUnpaidOrdersCommandHandler returns the handler run by the expiry job.
func (c *CompositionRoot) CreateExpireUnpaidOrdersCommandHandler() commands.ExpireUnpaidOrdersCommandHandler {
	return commands.NewExpireUnpaidOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// Read repositories are not bound to a unit of work and track nothing.

// CreateGetUserQueryHandler returns the user lookup by id or email.
func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(userrepo.NewGormUserRepository(c.gormDB, nil))
}

// CreateListUsersQueryHandler returns the handler listing all users.
func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(userrepo.NewGormUserRepository(c.gormDB, nil))
}

// CreateGetOrderQueryHandler returns the single order lookup.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil))
}

// CreateListOrdersQueryHandler returns the handler listing all orders or one user's orders.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(
		userrepo.NewGormUserRepository(c.gormDB, nil),
		orderrepo.NewGormOrderRepository(c.gormDB, nil),
	)
}

// CreateHTTPServer wires every command and query handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		http.CommandHandlers{
			RegisterUser:      c.CreateRegisterUserCommandHandler(),
			CreateOrder:       c.CreateCreateOrderCommandHandler(),
			AddOrderItem:      c.CreateAddOrderItemCommandHandler(),
			ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		},
		http.QueryHandlers{
			GetUser:    c.CreateGetUserQueryHandler(),
			ListUsers:  c.CreateListUsersQueryHandler(),
			GetOrder:   c.CreateGetOrderQueryHandler(),
			ListOrders: c.CreateListOrdersQueryHandler(),
		},
		c.logger,
	)
}

// CreateRouter returns the echo instance with all routes and middleware registered.
// It fails if the embedded OpenAPI document does not load.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return http.NewRouter(ctx, c.CreateHTTPServer(), c.metrics, c.logger)
}

// CreateJobManager returns the background jobs configured from Config. The expiry
// job is left out when OrderUnpaidTTL is zero.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireUnpaidOrdersCommandHandler(),
		c.metrics,
		c.config.OrderUnpaidTTL,
		c.config.ExpirySchedule,
		c.logger,
	)
}

// committedAggregateMetrics counts aggregates persisted by committed units of work.
type committedAggregateMetrics struct {
	metrics *metrics.Metrics
}

// AggregatesCommitted counts each committed user as a registration and each
// committed order under its current status.
func (o committedAggregateMetrics) AggregatesCommitted(_ context.Context, aggregates []postgres.TrackedAggregate) {
	for _, tracked := range aggregates {
		switch a := tracked.Aggregate.(type) {
		case *user.User:
			o.metrics.UserRegistered()
		case *order.Order:
			o.metrics.OrderCommitted(a.Status().String())
		}
	}
}

// FuncUserUoWFactory adapts a function to commands.UserUoWFactory.
type FuncUserUoWFactory func() commands.UserUoW

// Create calls f.
func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create calls f.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

// Create calls f.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
