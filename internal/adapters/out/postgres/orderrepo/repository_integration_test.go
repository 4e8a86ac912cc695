package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the conditional writes and the partial
// unique index guarding the one-active-order invariant.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
	suite.Require().NoError(db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_order_per_customer
		ON orders (customer_id)
		WHERE status IN ('PENDING', 'IN_PREPARATION', 'READY')
	`).Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder() *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), 2)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now(), []order.Line{line},
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(aggregate *order.Order) {
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsHeaderAndLines() {
	ctx := context.Background()

	aggregate := suite.newPendingOrder()
	suite.addOrder(aggregate)

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), restored.ID())
	suite.Equal(aggregate.CustomerID(), restored.CustomerID())
	suite.Equal(order.Pending, restored.Status())
	suite.Len(restored.Lines(), 1)
	suite.Equal(aggregate.Lines()[0].DishID(), restored.Lines()[0].DishID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondActiveOrderIsConflict() {
	ctx := context.Background()

	first := suite.newPendingOrder()
	suite.addOrder(first)

	line, err := order.NewLine(kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	second, err := order.NewOrder(
		kernel.NewUUID(), first.CustomerID(), kernel.NewUUID(), time.Now(), []order.Line{line},
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DeliveredOrderDoesNotBlockNewOne() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()
	pin := "1234"

	line, err := order.NewLine(kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	delivered, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), &chefID,
		time.Now(), order.Delivered, &pin, []order.Line{line},
	)
	suite.Require().NoError(err)
	suite.addOrder(delivered)

	nextLine, err := order.NewLine(kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	next, err := order.NewOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), time.Now(), []order.Line{nextLine},
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", next.ID(), next).Once()
	suite.Require().NoError(suite.repository.Add(ctx, next))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHasActiveOrder() {
	ctx := context.Background()

	aggregate := suite.newPendingOrder()
	suite.addOrder(aggregate)

	has, err := suite.repository.HasActiveOrder(ctx, aggregate.CustomerID())
	suite.Require().NoError(err)
	suite.True(has)

	has, err = suite.repository.HasActiveOrder(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(has)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignChef_WinnerAndLoser() {
	ctx := context.Background()

	aggregate := suite.newPendingOrder()
	suite.addOrder(aggregate)

	firstChef := kernel.NewUUID()
	suite.Require().NoError(suite.repository.AssignChef(ctx, aggregate.ID(), firstChef))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InPreparation, restored.Status())
	suite.Require().NotNil(restored.Chef())
	suite.Equal(firstChef, *restored.Chef())

	// The second claim finds no PENDING unassigned row and loses.
	err = suite.repository.AssignChef(ctx, aggregate.ID(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ConditionalTransition() {
	ctx := context.Background()

	aggregate := suite.newPendingOrder()
	suite.addOrder(aggregate)
	suite.Require().NoError(suite.repository.AssignChef(ctx, aggregate.ID(), kernel.NewUUID()))

	pin := "0427"
	err := suite.repository.UpdateStatus(ctx, aggregate.ID(), order.InPreparation, order.Ready, &pin)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, restored.Status())
	suite.Require().NotNil(restored.PIN())
	suite.Equal(pin, *restored.PIN())

	// Repeating the same transition misses the WHERE clause.
	err = suite.repository.UpdateStatus(ctx, aggregate.ID(), order.InPreparation, order.Ready, nil)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByStatusAndRestaurant_Pagination() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		line, err := order.NewLine(kernel.NewUUID(), 1)
		suite.Require().NoError(err)
		aggregate, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), restaurantID,
			base.Add(time.Duration(i)*time.Minute), []order.Line{line},
		)
		suite.Require().NoError(err)
		suite.addOrder(aggregate)
	}

	firstPage, err := suite.repository.GetByStatusAndRestaurant(ctx, order.Pending, restaurantID, 0, 2)
	suite.Require().NoError(err)
	suite.Len(firstPage, 2)

	secondPage, err := suite.repository.GetByStatusAndRestaurant(ctx, order.Pending, restaurantID, 1, 2)
	suite.Require().NoError(err)
	suite.Len(secondPage, 1)

	suite.True(firstPage[0].CreatedAt().Before(firstPage[1].CreatedAt()))
	suite.True(firstPage[1].CreatedAt().Before(secondPage[0].CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPendingBefore() {
	ctx := context.Background()

	line, err := order.NewLine(kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	stale, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now().Add(-2*time.Hour), []order.Line{line},
	)
	suite.Require().NoError(err)
	suite.addOrder(stale)

	fresh := suite.newPendingOrder()
	suite.addOrder(fresh)

	found, err := suite.repository.GetPendingBefore(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(stale.ID(), found[0].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
