package orderrepo_test

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
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
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
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) buildOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)
	err = aggregate.AddItem(kernel.NewUUID(), 2, decimal.NewFromInt(10))
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.buildOrder()

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.True(loaded.CustomerID().IsEqual(aggregate.CustomerID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.True(loaded.TotalAmount().Equal(decimal.NewFromInt(20)))
	suite.Len(loaded.Items(), 1)
}

func (suite *OrderRepositoryTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_ReplacesItemsAndStatus() {
	ctx := context.Background()
	aggregate := suite.buildOrder()
	productID := aggregate.Items()[0].ProductID()

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = aggregate.UpdateItem(productID, 5, decimal.NewFromInt(7))
	suite.Require().NoError(err)
	err = aggregate.MarkAsPaid()
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status())
	suite.NotNil(loaded.PaidAt())
	suite.True(loaded.TotalAmount().Equal(decimal.NewFromInt(35)))
	suite.Equal(5, loaded.Items()[0].Quantity())
}

func (suite *OrderRepositoryTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	aggregate := suite.buildOrder()

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = suite.repo.Delete(ctx, aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	err = suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error
	suite.Require().NoError(err)
	suite.Zero(itemCount)
}

func (suite *OrderRepositoryTestSuite) TestDelete_MissingOrder_ReturnsNotFound() {
	err := suite.repo.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetAllPendingBefore_FiltersByStatusAndAge() {
	ctx := context.Background()
	stale := suite.buildOrder()
	err := suite.repo.Add(ctx, stale)
	suite.Require().NoError(err)

	// age the first order past the cutoff
	err = suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", stale.ID().Bytes()).
		Update("created_at", time.Now().UTC().Add(-2*time.Hour)).Error
	suite.Require().NoError(err)

	fresh := suite.buildOrder()
	err = suite.repo.Add(ctx, fresh)
	suite.Require().NoError(err)

	paid := suite.buildOrder()
	err = paid.MarkAsPaid()
	suite.Require().NoError(err)
	err = suite.repo.Add(ctx, paid)
	suite.Require().NoError(err)

	found, err := suite.repo.GetAllPendingBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].ID().IsEqual(stale.ID()))
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
