package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

const badgeClassTTL = 5 * time.Minute

// BadgeClassCache is a read-through cache for badge class lookups. A cache
// miss returns (nil, nil); the service falls back to the repository.
type BadgeClassCache struct {
	client *redis.Client
}

// NewBadgeClassCache creates a BadgeClassCache wrapping the given Redis client.
func NewBadgeClassCache(client *redis.Client) *BadgeClassCache {
	return &BadgeClassCache{client: client}
}

// Get returns the cached badge class, or nil on a miss.
func (c *BadgeClassCache) Get(ctx context.Context, entityID string) (*domain.BadgeClass, error) {
	raw, err := c.client.Get(ctx, c.key(entityID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("badgeclass cache get: %w", err)
	}

	var bc domain.BadgeClass
	if err := json.Unmarshal(raw, &bc); err != nil {
		// Corrupt entry: drop it and report a miss.
		_ = c.client.Del(ctx, c.key(entityID)).Err()
		return nil, nil
	}
	return &bc, nil
}

// Set stores the badge class for badgeClassTTL.
func (c *BadgeClassCache) Set(ctx context.Context, bc *domain.BadgeClass) error {
	raw, err := json.Marshal(bc)
	if err != nil {
		return fmt.Errorf("badgeclass cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(bc.EntityID), raw, badgeClassTTL).Err()
}

// Invalidate removes the cached entry after an update.
func (c *BadgeClassCache) Invalidate(ctx context.Context, entityID string) error {
	return c.client.Del(ctx, c.key(entityID)).Err()
}

func (c *BadgeClassCache) key(entityID string) string {
	return "badgeclass:" + entityID
}
