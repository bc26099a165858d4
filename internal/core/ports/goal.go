package ports

import (
	"context"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// GoalRepository persists goals scoped to their owner.
type GoalRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error)
	Insert(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	Patch(ctx context.Context, ownerID, id string, patch domain.GoalPatch) (*domain.Goal, error)
	DeleteByOwner(ctx context.Context, ownerID, id string) error
}

type GoalService interface {
	List(ctx context.Context, ownerID string) ([]domain.Goal, error)
	Create(ctx context.Context, ownerID string, draft domain.GoalDraft) (*domain.Goal, error)
	Update(ctx context.Context, ownerID, id string, patch domain.GoalPatch) (*domain.Goal, error)
	Delete(ctx context.Context, ownerID, id string) error
}
