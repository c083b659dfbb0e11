package restaurantrepo_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RestaurantRepositoryIntegrationTestSuite provides integration tests for
// RestaurantRepository and DishRepository using PostgreSQL containers.
type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	restaurants *restaurantrepo.GormRestaurantRepository
	dishes      *restaurantrepo.GormDishRepository
	tracker     *MockAggregateTracker
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&restaurantrepo.RestaurantDTO{}, &restaurantrepo.DishDTO{}))
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants, dishes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.restaurants = restaurantrepo.NewGormRestaurantRepository(suite.db, suite.tracker)
	suite.dishes = restaurantrepo.NewGormDishRepository(suite.db)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAdd_Get_Roundtrip() {
	ctx := context.Background()
	rest := suite.createTestRestaurant()

	suite.Require().NoError(suite.restaurants.Add(ctx, rest))

	retrieved, err := suite.restaurants.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Equal(rest.Name(), retrieved.Name())
	suite.Equal(rest.OwnerID(), retrieved.OwnerID())
	suite.Nil(retrieved.PromotedUntil())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDish_OptionsSurviveRoundtrip() {
	ctx := context.Background()
	rest := suite.createTestRestaurant()
	suite.Require().NoError(suite.restaurants.Add(ctx, rest))

	dish, err := restaurant.NewDish(kernel.NewUUID(), rest.ID(), "Burrito", "Big one", 10000,
		[]restaurant.DishOption{
			{Name: "Spice", Extra: 500},
			{Name: "Size", Choices: []restaurant.DishChoice{{Name: "L", Extra: 2000}}},
		})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dishes.Add(ctx, dish))

	retrieved, err := suite.dishes.Get(ctx, dish.ID())
	suite.Require().NoError(err)
	suite.Equal(dish.Options(), retrieved.Options())
	suite.Equal(int64(12500), retrieved.PriceFor([]restaurant.OptionSelection{
		{Name: "Spice"},
		{Name: "Size", Choice: "L"},
	}))
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestClearExpiredPromotions() {
	ctx := context.Background()
	now := time.Now().UTC()

	expired := suite.createTestRestaurant()
	suite.Require().NoError(expired.Promote(now.Add(-time.Hour)))
	active := suite.createTestRestaurant()
	suite.Require().NoError(active.Promote(now.Add(time.Hour)))
	never := suite.createTestRestaurant()

	for _, r := range []*restaurant.Restaurant{expired, active, never} {
		suite.Require().NoError(suite.restaurants.Add(ctx, r))
	}

	cleared, err := suite.restaurants.ClearExpiredPromotions(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), cleared)

	retrieved, err := suite.restaurants.Get(ctx, expired.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.PromotedUntil())

	retrieved, err = suite.restaurants.Get(ctx, active.ID())
	suite.Require().NoError(err)
	suite.NotNil(retrieved.PromotedUntil())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDish_UpdatePersisted() {
	ctx := context.Background()
	rest := suite.createTestRestaurant()
	suite.Require().NoError(suite.restaurants.Add(ctx, rest))

	dish, err := restaurant.NewDish(kernel.NewUUID(), rest.ID(), "Burrito", "Big one", 10000, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dishes.Add(ctx, dish))

	suite.Require().NoError(dish.ChangePrice(12000))
	suite.Require().NoError(dish.ReplaceOptions([]restaurant.DishOption{{Name: "Spice", Extra: 500}}))
	suite.Require().NoError(suite.dishes.Update(ctx, dish))

	retrieved, err := suite.dishes.Get(ctx, dish.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(12000), retrieved.Price())
	suite.Equal(dish.Options(), retrieved.Options())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDelete_RemovesRestaurantAndMenu() {
	ctx := context.Background()
	rest := suite.createTestRestaurant()
	suite.Require().NoError(suite.restaurants.Add(ctx, rest))

	dish, err := restaurant.NewDish(kernel.NewUUID(), rest.ID(), "Burrito", "Big one", 10000, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dishes.Add(ctx, dish))

	suite.Require().NoError(suite.dishes.DeleteByRestaurant(ctx, rest.ID()))
	suite.Require().NoError(suite.restaurants.Delete(ctx, rest.ID()))

	_, err = suite.restaurants.Get(ctx, rest.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.dishes.Get(ctx, dish.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDelete_UnknownID_NotFound() {
	err := suite.restaurants.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.dishes.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	_, err := suite.restaurants.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) createTestRestaurant() *restaurant.Restaurant {
	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Taco Bueno", "Mexican")
	suite.Require().NoError(err)
	return rest
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
