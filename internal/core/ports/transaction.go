package ports

import (
	"context"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// TransactionRepository persists transactions scoped to their owner.
type TransactionRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	Insert(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	// Replace overwrites every editable field of the document matching both
	// id and owner in a single round-trip.
	Replace(ctx context.Context, ownerID, id string, draft domain.TransactionDraft) (*domain.Transaction, error)
	DeleteByOwner(ctx context.Context, ownerID, id string) error
	FindBySyncKey(ctx context.Context, ownerID, key string) ([]domain.Transaction, error)
}

// SyncResult reports the outcome of a batch sync. Replayed means the
// idempotency key had been seen before and IDs are the previously stored
// transactions rather than fresh inserts.
type SyncResult struct {
	IDs      []string
	Replayed bool
}

type TransactionService interface {
	List(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	Create(ctx context.Context, ownerID string, draft domain.TransactionDraft) (*domain.Transaction, error)
	Update(ctx context.Context, ownerID, id string, draft domain.TransactionDraft) (*domain.Transaction, error)
	Delete(ctx context.Context, ownerID, id string) error
	Sync(ctx context.Context, ownerID string, drafts []domain.TransactionDraft, idempotencyKey string) (*SyncResult, error)
}
