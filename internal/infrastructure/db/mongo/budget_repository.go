package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

const collectionBudgets = "budgets"

type BudgetRepository struct {
	owned ownedCollection[domain.Budget]
}

func NewBudgetRepository(db *mongo.Database) *BudgetRepository {
	return &BudgetRepository{owned: ownedCollection[domain.Budget]{col: db.Collection(collectionBudgets)}}
}

func (r *BudgetRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Budget, error) {
	return r.owned.listByOwner(ctx, ownerID)
}

func (r *BudgetRepository) Insert(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	id, err := r.owned.insert(ctx, b)
	if err != nil {
		return nil, err
	}
	created := *b
	created.ID = id
	return &created, nil
}

func (r *BudgetRepository) Patch(ctx context.Context, ownerID, id string, patch domain.BudgetPatch) (*domain.Budget, error) {
	updated, err := r.owned.updateByOwner(ctx, ownerID, id, budgetPatchSet(patch))
	if errors.Is(err, errNoMatch) {
		return nil, domain.ErrBudgetNotFound
	}
	return updated, err
}

func (r *BudgetRepository) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	if err := r.owned.deleteByOwner(ctx, ownerID, id); err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.ErrBudgetNotFound
		}
		return err
	}
	return nil
}

func (r *BudgetRepository) EnsureIndexes(ctx context.Context) error {
	return r.owned.ensureOwnerIndex(ctx)
}

// budgetPatchSet builds the $set document from the non-nil patch fields.
func budgetPatchSet(p domain.BudgetPatch) bson.M {
	set := bson.M{}
	if p.CategoryID != nil {
		set["categoryId"] = *p.CategoryID
	}
	if p.Amount != nil {
		set["amount"] = *p.Amount
	}
	if p.Period != nil {
		set["period"] = *p.Period
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.AlertThreshold != nil {
		set["alertThreshold"] = *p.AlertThreshold
	}
	if p.UpdatedAt != nil {
		set["updatedAt"] = *p.UpdatedAt
	}
	return set
}
