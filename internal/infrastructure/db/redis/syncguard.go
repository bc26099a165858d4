package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const syncKeyTTL = 24 * time.Hour

// SyncGuard provides idempotency checks for transaction batch sync.
// Key format: sync:<user_id>:<idempotency_key>
type SyncGuard struct {
	client *redis.Client
}

// NewSyncGuard creates a SyncGuard wrapping the given Redis client.
func NewSyncGuard(client *redis.Client) *SyncGuard {
	return &SyncGuard{client: client}
}

// Seen reports whether this user has already submitted a sync batch with
// this idempotency key.
func (g *SyncGuard) Seen(ctx context.Context, ownerID, key string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(ownerID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("sync guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this batch has been applied (expires after syncKeyTTL).
func (g *SyncGuard) Mark(ctx context.Context, ownerID, key string) error {
	return g.client.Set(ctx, g.key(ownerID, key), "1", syncKeyTTL).Err()
}

func (g *SyncGuard) key(ownerID, key string) string {
	return fmt.Sprintf("sync:%s:%s", ownerID, key)
}
