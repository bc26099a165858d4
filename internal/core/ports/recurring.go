package ports

import (
	"context"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// RecurringRepository persists recurring rules scoped to their owner.
type RecurringRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.RecurringRule, error)
	Insert(ctx context.Context, r *domain.RecurringRule) (*domain.RecurringRule, error)
	Patch(ctx context.Context, ownerID, id string, patch domain.RecurringPatch) (*domain.RecurringRule, error)
	DeleteByOwner(ctx context.Context, ownerID, id string) error
}

type RecurringService interface {
	List(ctx context.Context, ownerID string) ([]domain.RecurringRule, error)
	Create(ctx context.Context, ownerID string, draft domain.RecurringDraft) (*domain.RecurringRule, error)
	Update(ctx context.Context, ownerID, id string, patch domain.RecurringPatch) (*domain.RecurringRule, error)
	Delete(ctx context.Context, ownerID, id string) error
}
