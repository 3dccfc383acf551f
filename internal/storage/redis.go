package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SergeyKozyr/star-burger/internal/geo"
)

// CoordinateCache keeps resolved coordinates in Redis. A zero TTL stores the
// entry without expiry, which is how restaurant coordinates are held for the
// restaurant's lifetime.
type CoordinateCache struct {
	Client *redis.Client
}

func NewCoordinateCache(client *redis.Client) *CoordinateCache {
	return &CoordinateCache{Client: client}
}

func (c *CoordinateCache) RestaurantKey(restaurantID int) string {
	return "coords:restaurant:" + strconv.Itoa(restaurantID)
}

func (c *CoordinateCache) OrderKey(orderID int) string {
	return "coords:order:" + strconv.Itoa(orderID)
}

func (c *CoordinateCache) Get(ctx context.Context, key string) (geo.Point, bool, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return geo.Point{}, false, nil
	}
	if err != nil {
		return geo.Point{}, false, err
	}

	pt, err := parsePoint(val)
	if err != nil {
		return geo.Point{}, false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	return pt, true, nil
}

func (c *CoordinateCache) Put(ctx context.Context, key string, pt geo.Point, ttl time.Duration) error {
	return c.Client.Set(ctx, key, formatPoint(pt), ttl).Err()
}

func formatPoint(pt geo.Point) string {
	return strconv.FormatFloat(pt.Lat, 'f', -1, 64) + " " + strconv.FormatFloat(pt.Lon, 'f', -1, 64)
}

func parsePoint(val string) (geo.Point, error) {
	fields := strings.Fields(val)
	if len(fields) != 2 {
		return geo.Point{}, fmt.Errorf("expected \"lat lon\", got %q", val)
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geo.Point{}, err
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geo.Point{}, err
	}
	return geo.Point{Lat: lat, Lon: lon}, nil
}
