package ports

import (
	"context"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// CategoryRepository persists custom categories scoped to their owner.
// Built-in default categories never touch the repository.
type CategoryRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	DeleteByOwner(ctx context.Context, ownerID, id string) error
}

type CategoryService interface {
	// List returns the built-in expense and income categories followed by
	// the owner's custom ones.
	List(ctx context.Context, ownerID string) ([]domain.Category, error)
	Create(ctx context.Context, ownerID string, draft domain.CategoryDraft) (*domain.Category, error)
	Delete(ctx context.Context, ownerID, id string) error
}
