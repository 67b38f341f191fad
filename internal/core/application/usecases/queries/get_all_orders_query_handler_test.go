package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repo       *orderrepo.GormOrderRepository
	allHandler queries.GetAllOrdersQueryHandler
	oneHandler queries.GetOrderByIDQueryHandler
}

func (suite *OrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.allHandler = queries.NewGetAllOrdersQueryHandler(db)
	suite.oneHandler = queries.NewGetOrderByIDQueryHandler(db)
}

func (suite *OrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueryHandlerTestSuite) seedOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)
	err = aggregate.AddItem(kernel.NewUUID(), 2, decimal.NewFromInt(25))
	suite.Require().NoError(err)
	err = suite.repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.allHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueryHandlerTestSuite) TestHandle_WithOrders_ReturnsOrdersWithItems() {
	seeded := suite.seedOrder()

	query := queries.NewGetAllOrdersQuery()
	result, err := suite.allHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(seeded.ID()))
	suite.Equal("Pending", result[0].Status)
	suite.True(result[0].TotalAmount.Equal(decimal.NewFromInt(50)))
	suite.Require().Len(result[0].Items, 1)
	suite.Equal(2, result[0].Items[0].Quantity)
}

func (suite *OrderQueryHandlerTestSuite) TestHandle_ByID_ReturnsOrder() {
	seeded := suite.seedOrder()

	query, err := queries.NewGetOrderByIDQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.oneHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(seeded.ID()))
	suite.Require().Len(result.Items, 1)
}

func (suite *OrderQueryHandlerTestSuite) TestHandle_ByID_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.oneHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlerTestSuite))
}
