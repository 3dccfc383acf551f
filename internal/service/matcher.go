package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/SergeyKozyr/star-burger/internal/domain"
	"github.com/SergeyKozyr/star-burger/internal/geo"
)

// MatcherService finds the restaurants able to supply every item of an order
// and ranks them by distance from the delivery address.
type MatcherService struct {
	orders      OrderRepository
	products    ProductRepository
	restaurants RestaurantRepository
	resolver    CoordinateResolverInterface
}

func NewMatcherService(orders OrderRepository, products ProductRepository, restaurants RestaurantRepository, resolver CoordinateResolverInterface) *MatcherService {
	return &MatcherService{
		orders:      orders,
		products:    products,
		restaurants: restaurants,
		resolver:    resolver,
	}
}

// Match returns the restaurants stocking every distinct product of the order,
// nearest first. An order nobody can fulfill yields an empty slice, not an
// error, and triggers no geocoding at all. Geocoding failures propagate with
// no partial ranking.
func (s *MatcherService) Match(ctx context.Context, orderID int) ([]domain.RankedRestaurant, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	ranked := []domain.RankedRestaurant{}

	qualifying, err := s.qualifyingIDs(order)
	if err != nil {
		return nil, err
	}
	if len(qualifying) == 0 {
		return ranked, nil
	}

	restaurants, err := s.restaurants.ListRestaurantsByIDs(qualifying)
	if err != nil {
		return nil, fmt.Errorf("load qualifying restaurants: %w", err)
	}

	delivery, err := s.resolver.ResolveOrder(ctx, order.ID, order.Address)
	if err != nil {
		return nil, fmt.Errorf("resolve delivery address: %w", err)
	}

	for _, rest := range restaurants {
		pt, err := s.resolver.ResolveRestaurant(ctx, rest.ID, rest.Address)
		if err != nil {
			return nil, fmt.Errorf("resolve restaurant %d address: %w", rest.ID, err)
		}

		dist, err := geo.Distance(delivery, pt)
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, domain.RankedRestaurant{Restaurant: rest, DistanceKm: dist})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm.Equal(ranked[j].DistanceKm) {
			return ranked[i].Restaurant.ID < ranked[j].Restaurant.ID
		}
		return ranked[i].DistanceKm.LessThan(ranked[j].DistanceKm)
	})
	return ranked, nil
}

// qualifyingIDs intersects per-product sets of stocking restaurant IDs. Sets
// are keyed by restaurant ID, never by object identity.
func (s *MatcherService) qualifyingIDs(order *domain.Order) ([]int, error) {
	seen := make(map[int]bool, len(order.Items))
	var productIDs []int
	for _, item := range order.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}
	if len(productIDs) == 0 {
		return nil, nil
	}

	var qualifying map[int]struct{}
	for _, productID := range productIDs {
		ids, err := s.products.RestaurantIDsStockingProduct(productID)
		if err != nil {
			return nil, fmt.Errorf("restaurants stocking product %d: %w", productID, err)
		}

		set := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}

		if qualifying == nil {
			qualifying = set
			continue
		}
		for id := range qualifying {
			if _, ok := set[id]; !ok {
				delete(qualifying, id)
			}
		}
		if len(qualifying) == 0 {
			return nil, nil
		}
	}

	result := make([]int, 0, len(qualifying))
	for id := range qualifying {
		result = append(result, id)
	}
	sort.Ints(result)
	return result, nil
}

var _ MatcherServiceInterface = (*MatcherService)(nil)
