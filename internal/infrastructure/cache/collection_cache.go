package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Collection keys for the advisory cache, one JSON blob per collection.
const (
	KeyProducts = "collections:products"
	KeySales    = "collections:sales"
	KeyAds      = "collections:ads"
)

// ErrDisabled is returned from reads when no cache is configured
var ErrDisabled = fmt.Errorf("collection cache disabled")

// CollectionCache is an advisory Redis-backed cache holding the last seen
// snapshot of each collection as a JSON blob. It is only ever used to serve
// stale data when the database is unreachable; every successful database
// read overwrites it. A nil *CollectionCache is valid and disables caching.
type CollectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and returns a collection cache
func New(addr, password string, db int, ttl time.Duration) (*CollectionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("Successfully connected to Redis")
	return &CollectionCache{client: client, ttl: ttl}, nil
}

// Set stores a collection blob. Failures are logged, not propagated: the
// cache is advisory and must never fail a request.
func (c *CollectionCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("Warning: failed to cache %s: %v", key, err)
	}
}

// Get returns the cached blob for a collection key
func (c *CollectionCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil {
		return nil, ErrDisabled
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Close releases the underlying Redis connection
func (c *CollectionCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
