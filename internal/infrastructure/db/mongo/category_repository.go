package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

const collectionCategories = "categories"

// CategoryRepository stores only custom categories; built-in defaults live
// in the domain package and never reach the database. A default category id
// like "food" is not valid ObjectID hex, so a delete on it can never match.
type CategoryRepository struct {
	owned ownedCollection[domain.Category]
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{owned: ownedCollection[domain.Category]{col: db.Collection(collectionCategories)}}
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	return r.owned.listByOwner(ctx, ownerID)
}

func (r *CategoryRepository) Insert(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	id, err := r.owned.insert(ctx, c)
	if err != nil {
		return nil, err
	}
	created := *c
	created.ID = id
	return &created, nil
}

func (r *CategoryRepository) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	if err := r.owned.deleteByOwner(ctx, ownerID, id); err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.ErrCategoryNotDeletable
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) EnsureIndexes(ctx context.Context) error {
	return r.owned.ensureOwnerIndex(ctx)
}
