// Package cache provides a Redis-backed store for ride records.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/rideshare/rides-api/internal/domain"
)

const keyPrefix = "rides:ride:"

// RedisRideCache implements repo.RideCache on top of a go-redis client.
// Rides are stored as JSON under "rides:ride:<id>".
type RedisRideCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRideCache returns a cache writing entries with the given TTL.
// A ttl of 0 keeps entries until Redis evicts them.
func NewRedisRideCache(client *redis.Client, ttl time.Duration) *RedisRideCache {
	return &RedisRideCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL, opens a client and pings it.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache.Connect: parse url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache.Connect: ping: %w", err)
	}
	return client, nil
}

// Get returns the ride stored under id. A missing key is a miss, not an error.
func (c *RedisRideCache) Get(ctx context.Context, id int64) (domain.Ride, bool, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Ride{}, false, nil
	}
	if err != nil {
		return domain.Ride{}, false, fmt.Errorf("cache.RedisRideCache.Get: %w", err)
	}

	var ride domain.Ride
	if err := json.Unmarshal(raw, &ride); err != nil {
		return domain.Ride{}, false, fmt.Errorf("cache.RedisRideCache.Get: decode: %w", err)
	}
	return ride, true, nil
}

// Set stores ride under its id.
func (c *RedisRideCache) Set(ctx context.Context, ride domain.Ride) error {
	raw, err := json.Marshal(ride)
	if err != nil {
		return fmt.Errorf("cache.RedisRideCache.Set: encode: %w", err)
	}
	if err := c.client.Set(ctx, key(ride.RideID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.RedisRideCache.Set: %w", err)
	}
	return nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}
