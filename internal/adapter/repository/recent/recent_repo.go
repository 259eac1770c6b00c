// Package recent stores each client's recently viewed listings in a
// capped Redis list.
package recent

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "recent:"
	maxEntries = 5
	historyTTL = 30 * 24 * time.Hour
)

type RecentRepository struct {
	client *redis.Client
}

func NewRecentRepository(client *redis.Client) *RecentRepository {
	return &RecentRepository{client: client}
}

// Record pushes listingID to the front of the client's history. A
// repeated view moves the entry to the front instead of duplicating
// it, and the list is trimmed to the newest five.
func (r *RecentRepository) Record(ctx context.Context, clientID, listingID string) error {
	key := keyPrefix + clientID

	pipe := r.client.TxPipeline()
	pipe.LRem(ctx, key, 0, listingID)
	pipe.LPush(ctx, key, listingID)
	pipe.LTrim(ctx, key, 0, maxEntries-1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("RecentRepository.Record: pipeline failed: %w", err)
	}
	return nil
}

// List returns the client's history, most recent first.
func (r *RecentRepository) List(ctx context.Context, clientID string) ([]string, error) {
	ids, err := r.client.LRange(ctx, keyPrefix+clientID, 0, maxEntries-1).Result()
	if err != nil {
		return nil, fmt.Errorf("RecentRepository.List: lrange failed: %w", err)
	}
	return ids, nil
}
