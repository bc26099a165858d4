package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

const collectionRecurring = "recurring_transactions"

type RecurringRepository struct {
	owned ownedCollection[domain.RecurringRule]
}

func NewRecurringRepository(db *mongo.Database) *RecurringRepository {
	return &RecurringRepository{owned: ownedCollection[domain.RecurringRule]{col: db.Collection(collectionRecurring)}}
}

func (r *RecurringRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.RecurringRule, error) {
	return r.owned.listByOwner(ctx, ownerID)
}

func (r *RecurringRepository) Insert(ctx context.Context, rule *domain.RecurringRule) (*domain.RecurringRule, error) {
	id, err := r.owned.insert(ctx, rule)
	if err != nil {
		return nil, err
	}
	created := *rule
	created.ID = id
	return &created, nil
}

func (r *RecurringRepository) Patch(ctx context.Context, ownerID, id string, patch domain.RecurringPatch) (*domain.RecurringRule, error) {
	updated, err := r.owned.updateByOwner(ctx, ownerID, id, recurringPatchSet(patch))
	if errors.Is(err, errNoMatch) {
		return nil, domain.ErrRecurringNotFound
	}
	return updated, err
}

func (r *RecurringRepository) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	if err := r.owned.deleteByOwner(ctx, ownerID, id); err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.ErrRecurringNotFound
		}
		return err
	}
	return nil
}

func (r *RecurringRepository) EnsureIndexes(ctx context.Context) error {
	return r.owned.ensureOwnerIndex(ctx)
}

// recurringPatchSet builds the $set document from the non-nil patch fields.
func recurringPatchSet(p domain.RecurringPatch) bson.M {
	set := bson.M{}
	if p.Type != nil {
		set["type"] = *p.Type
	}
	if p.Amount != nil {
		set["amount"] = *p.Amount
	}
	if p.CategoryID != nil {
		set["categoryId"] = *p.CategoryID
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Frequency != nil {
		set["frequency"] = *p.Frequency
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["endDate"] = *p.EndDate
	}
	if p.LastGenerated != nil {
		set["lastGenerated"] = *p.LastGenerated
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.UpdatedAt != nil {
		set["updatedAt"] = *p.UpdatedAt
	}
	return set
}
