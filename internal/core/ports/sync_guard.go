package ports

import "context"

// SyncGuard remembers idempotency keys already applied to a user's
// transaction sync so a retried batch is not inserted twice.
type SyncGuard interface {
	Seen(ctx context.Context, ownerID, key string) (bool, error)
	Mark(ctx context.Context, ownerID, key string) error
}
