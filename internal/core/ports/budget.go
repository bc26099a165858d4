package ports

import (
	"context"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// BudgetRepository persists budgets scoped to their owner.
type BudgetRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Budget, error)
	Insert(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
	// Patch applies only the non-nil fields of the patch to the document
	// matching both id and owner in a single round-trip.
	Patch(ctx context.Context, ownerID, id string, patch domain.BudgetPatch) (*domain.Budget, error)
	DeleteByOwner(ctx context.Context, ownerID, id string) error
}

type BudgetService interface {
	List(ctx context.Context, ownerID string) ([]domain.Budget, error)
	Create(ctx context.Context, ownerID string, draft domain.BudgetDraft) (*domain.Budget, error)
	Update(ctx context.Context, ownerID, id string, patch domain.BudgetPatch) (*domain.Budget, error)
	Delete(ctx context.Context, ownerID, id string) error
}
