package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/badgeforge/issuer-api/internal/api/metrics"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for the audit pipeline backed by
// Redis. Key format: dedup:<assertion_id>:<action>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact badge event has already been
// processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, assertionID, action string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(assertionID, action, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, assertionID, action string, ts time.Time) error {
	return d.client.Set(ctx, d.key(assertionID, action, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(assertionID, action string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%s:%d", assertionID, action, ts.Unix())
}
