package service

import (
	"context"
	"log"
	"time"

	"github.com/SergeyKozyr/star-burger/internal/geo"
)

// OrderCoordinatesTTL bounds how long a delivery address resolution is kept;
// a customer's address only matters for the life of that delivery.
const OrderCoordinatesTTL = 7 * 24 * time.Hour

// CoordinateResolver funnels every coordinate lookup through one cached path:
// hit the cache, otherwise geocode and store the result. The TTL is explicit
// per call-site. Cache failures degrade to a plain geocoder call; only
// geocoder failures propagate.
type CoordinateResolver struct {
	cache    CoordinateCache
	geocoder Geocoder
}

func NewCoordinateResolver(cache CoordinateCache, geocoder Geocoder) *CoordinateResolver {
	return &CoordinateResolver{cache: cache, geocoder: geocoder}
}

// ResolveOrder resolves a delivery address, cached under the order's key for
// seven days.
func (r *CoordinateResolver) ResolveOrder(ctx context.Context, orderID int, address string) (geo.Point, error) {
	return r.resolve(ctx, r.cache.OrderKey(orderID), address, OrderCoordinatesTTL)
}

// ResolveRestaurant resolves a restaurant address, cached under the
// restaurant's key without expiry. The entry is not invalidated when the
// restaurant's address changes.
func (r *CoordinateResolver) ResolveRestaurant(ctx context.Context, restaurantID int, address string) (geo.Point, error) {
	return r.resolve(ctx, r.cache.RestaurantKey(restaurantID), address, 0)
}

func (r *CoordinateResolver) resolve(ctx context.Context, key, address string, ttl time.Duration) (geo.Point, error) {
	if pt, ok, err := r.cache.Get(ctx, key); err != nil {
		log.Printf("Warning: coordinate cache read failed for %s: %v", key, err)
	} else if ok {
		return pt, nil
	}

	pt, err := r.geocoder.Resolve(ctx, address)
	if err != nil {
		return geo.Point{}, err
	}

	if err := r.cache.Put(ctx, key, pt, ttl); err != nil {
		log.Printf("Warning: failed to cache coordinates for %s: %v", key, err)
	}
	return pt, nil
}

var _ CoordinateResolverInterface = (*CoordinateResolver)(nil)
