// Package cache provides a Redis-backed read cache for listings.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// ErrNotFound is returned on a cache miss.
var ErrNotFound = errors.New("not found in cache")

const keyPrefix = "listing:"

type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

func (c *ListingCache) Get(ctx context.Context, id string) (*domain.Listing, error) {
	data, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ListingCache.Get: redis get failed: %w", err)
	}

	var listing domain.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("ListingCache.Get: failed to unmarshal listing %s: %w", id, err)
	}
	return &listing, nil
}

func (c *ListingCache) Set(ctx context.Context, listing *domain.Listing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("ListingCache.Set: failed to marshal listing %s: %w", listing.ID, err)
	}
	if err := c.client.Set(ctx, keyPrefix+listing.ID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("ListingCache.Set: redis set failed: %w", err)
	}
	return nil
}

func (c *ListingCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("ListingCache.Delete: redis del failed: %w", err)
	}
	return nil
}
