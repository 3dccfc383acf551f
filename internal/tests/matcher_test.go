package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SergeyKozyr/star-burger/internal/domain"
	"github.com/SergeyKozyr/star-burger/internal/geo"
	"github.com/SergeyKozyr/star-burger/internal/mocks"
	"github.com/SergeyKozyr/star-burger/internal/service"
)

func matcherFixtures(t *testing.T) (*mocks.OrderRepository, *mocks.ProductRepository, *mocks.RestaurantRepository, *mocks.CoordinateResolverInterface, *service.MatcherService) {
	orders := mocks.NewOrderRepository(t)
	products := mocks.NewProductRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	resolver := mocks.NewCoordinateResolverInterface(t)
	svc := service.NewMatcherService(orders, products, restaurants, resolver)
	return orders, products, restaurants, resolver, svc
}

func TestMatch_OrderNotFound(t *testing.T) {
	orders, _, _, _, svc := matcherFixtures(t)

	orders.On("GetOrder", 404).Return(nil, domain.ErrOrderNotFound).Once()

	_, err := svc.Match(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestMatch_NoRestaurantStocksEverything(t *testing.T) {
	orders, products, _, _, svc := matcherFixtures(t)

	order := &domain.Order{
		ID:      1,
		Address: "Moscow, Arbat 1",
		Items: []domain.OrderItem{
			{ProductID: 10, Quantity: 1},
			{ProductID: 20, Quantity: 1},
		},
	}
	orders.On("GetOrder", 1).Return(order, nil).Once()
	products.On("RestaurantIDsStockingProduct", 10).Return([]int{1, 2}, nil).Once()
	products.On("RestaurantIDsStockingProduct", 20).Return([]int{3}, nil).Once()

	ranked, err := svc.Match(context.Background(), 1)

	assert.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestMatch_EmptyResultSkipsGeocoding(t *testing.T) {
	orders, products, restaurants, resolver, svc := matcherFixtures(t)

	order := &domain.Order{
		ID:      1,
		Address: "Moscow, Arbat 1",
		Items:   []domain.OrderItem{{ProductID: 10, Quantity: 1}},
	}
	orders.On("GetOrder", 1).Return(order, nil).Once()
	products.On("RestaurantIDsStockingProduct", 10).Return([]int{}, nil).Once()

	ranked, err := svc.Match(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, ranked)
	resolver.AssertNotCalled(t, "ResolveOrder", mock.Anything, mock.Anything, mock.Anything)
	restaurants.AssertNotCalled(t, "ListRestaurantsByIDs", mock.Anything)
}

func TestMatch_IntersectionAcrossProducts(t *testing.T) {
	orders, products, restaurants, resolver, svc := matcherFixtures(t)

	order := &domain.Order{
		ID:      2,
		Address: "Moscow, Arbat 1",
		Items: []domain.OrderItem{
			{ProductID: 10, Quantity: 1},
			{ProductID: 20, Quantity: 2},
		},
	}
	orders.On("GetOrder", 2).Return(order, nil).Once()
	products.On("RestaurantIDsStockingProduct", 10).Return([]int{1, 2}, nil).Once()
	products.On("RestaurantIDsStockingProduct", 20).Return([]int{1}, nil).Once()
	restaurants.On("ListRestaurantsByIDs", []int{1}).
		Return([]domain.Restaurant{{ID: 1, Name: "Central", Address: "Moscow, Tverskaya 1"}}, nil).Once()

	resolver.On("ResolveOrder", mock.Anything, 2, "Moscow, Arbat 1").
		Return(geo.Point{Lat: 55.75, Lon: 37.60}, nil).Once()
	resolver.On("ResolveRestaurant", mock.Anything, 1, "Moscow, Tverskaya 1").
		Return(geo.Point{Lat: 55.76, Lon: 37.61}, nil).Once()

	ranked, err := svc.Match(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Restaurant.ID)
	assert.True(t, ranked[0].DistanceKm.IsPositive())
}

func TestMatch_RanksByDistance(t *testing.T) {
	orders, products, restaurants, resolver, svc := matcherFixtures(t)

	order := &domain.Order{
		ID:      3,
		Address: "Moscow, Arbat 1",
		Items:   []domain.OrderItem{{ProductID: 10, Quantity: 1}},
	}
	orders.On("GetOrder", 3).Return(order, nil).Once()
	products.On("RestaurantIDsStockingProduct", 10).Return([]int{1, 2, 3}, nil).Once()
	restaurants.On("ListRestaurantsByIDs", []int{1, 2, 3}).Return([]domain.Restaurant{
		{ID: 1, Name: "Far", Address: "far"},
		{ID: 2, Name: "Near", Address: "near"},
		{ID: 3, Name: "Middle", Address: "middle"},
	}, nil).Once()

	resolver.On("ResolveOrder", mock.Anything, 3, "Moscow, Arbat 1").
		Return(geo.Point{Lat: 55.75, Lon: 37.60}, nil).Once()
	resolver.On("ResolveRestaurant", mock.Anything, 1, "far").
		Return(geo.Point{Lat: 56.75, Lon: 37.60}, nil).Once()
	resolver.On("ResolveRestaurant", mock.Anything, 2, "near").
		Return(geo.Point{Lat: 55.76, Lon: 37.60}, nil).Once()
	resolver.On("ResolveRestaurant", mock.Anything, 3, "middle").
		Return(geo.Point{Lat: 55.95, Lon: 37.60}, nil).Once()

	ranked, err := svc.Match(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, ranked, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{ranked[0].Restaurant.ID, ranked[1].Restaurant.ID, ranked[2].Restaurant.ID})
	assert.True(t, ranked[0].DistanceKm.LessThan(ranked[1].DistanceKm))
	assert.True(t, ranked[1].DistanceKm.LessThan(ranked[2].DistanceKm))
}

func TestMatch_EqualDistanceBreaksTieByID(t *testing.T) {
	orders, products, restaurants, resolver, svc := matcherFixtures(t)

	order := &domain.Order{
		ID:      4,
		Address: "Moscow, Arbat 1",
		Items:   []domain.OrderItem{{ProductID: 10, Quantity: 1}},
	}
	orders.On("GetOrder", 4).Return(order, nil).Once()
	products.On("RestaurantIDsStockingProduct", 10).Return([]int{9, 2}, nil).Once()
	restaurants.On("ListRestaurantsByIDs", []int{2, 9}).Return([]domain.Restaurant{
		{ID: 2, Name: "Twin A", Address: "same building"},
		{ID: 9, Name: "Twin B", Address: "same building"},
	}, nil).Once()

	samePoint := geo.Point{Lat: 55.76, Lon: 37.61}
	resolver.On("ResolveOrder", mock.Anything, 4, "Moscow, Arbat 1").
		Return(geo.Point{Lat: 55.75, Lon: 37.60}, nil).Once()
	resolver.On("ResolveRestaurant", mock.Anything, 2, "same building").Return(samePoint, nil).Once()
	resolver.On("ResolveRestaurant", mock.Anything, 9, "same building").Return(samePoint, nil).Once()

	ranked, err := svc.Match(context.Background(), 4)

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].Restaurant.ID)
	assert.Equal(t, 9, ranked[1].Restaurant.ID)
	assert.True(t, ranked[0].DistanceKm.Equal(ranked[1].DistanceKm))
}

func TestMatch_DuplicateProductCountedOnce(t *testing.T) {
	orders, products, restaurants, resolver, svc := matcherFixtures(t)

	order := &domain.Order{
		ID:      5,
		Address: "Moscow, Arbat 1",
		Items: []domain.OrderItem{
			{ProductID: 10, Quantity: 1},
			{ProductID: 10, Quantity: 3},
		},
	}
	orders.On("GetOrder", 5).Return(order, nil).Once()
	products.On("RestaurantIDsStockingProduct", 10).Return([]int{1}, nil).Once()
	restaurants.On("ListRestaurantsByIDs", []int{1}).
		Return([]domain.Restaurant{{ID: 1, Name: "Central", Address: "addr"}}, nil).Once()
	resolver.On("ResolveOrder", mock.Anything, 5, "Moscow, Arbat 1").
		Return(geo.Point{Lat: 55.75, Lon: 37.60}, nil).Once()
	resolver.On("ResolveRestaurant", mock.Anything, 1, "addr").
		Return(geo.Point{Lat: 55.76, Lon: 37.61}, nil).Once()

	ranked, err := svc.Match(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	products.AssertNumberOfCalls(t, "RestaurantIDsStockingProduct", 1)
}

func TestMatch_GeocodingFailurePropagates(t *testing.T) {
	orders, products, restaurants, resolver, svc := matcherFixtures(t)

	order := &domain.Order{
		ID:      6,
		Address: "unresolvable address",
		Items:   []domain.OrderItem{{ProductID: 10, Quantity: 1}},
	}
	orders.On("GetOrder", 6).Return(order, nil).Once()
	products.On("RestaurantIDsStockingProduct", 10).Return([]int{1}, nil).Once()
	restaurants.On("ListRestaurantsByIDs", []int{1}).
		Return([]domain.Restaurant{{ID: 1, Name: "Central", Address: "addr"}}, nil).Once()
	resolver.On("ResolveOrder", mock.Anything, 6, "unresolvable address").
		Return(geo.Point{}, geo.ErrGeocodingFailed).Once()

	_, err := svc.Match(context.Background(), 6)

	assert.ErrorIs(t, err, geo.ErrGeocodingFailed)
	resolver.AssertNotCalled(t, "ResolveRestaurant", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatch_EmptyOrderYieldsEmptyRanking(t *testing.T) {
	orders, products, _, resolver, svc := matcherFixtures(t)

	order := &domain.Order{ID: 7, Address: "Moscow, Arbat 1"}
	orders.On("GetOrder", 7).Return(order, nil).Once()

	ranked, err := svc.Match(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, ranked)
	products.AssertNotCalled(t, "RestaurantIDsStockingProduct", mock.Anything)
	resolver.AssertNotCalled(t, "ResolveOrder", mock.Anything, mock.Anything, mock.Anything)
}
