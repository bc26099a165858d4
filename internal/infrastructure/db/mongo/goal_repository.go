package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

const collectionGoals = "goals"

type GoalRepository struct {
	owned ownedCollection[domain.Goal]
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{owned: ownedCollection[domain.Goal]{col: db.Collection(collectionGoals)}}
}

func (r *GoalRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	return r.owned.listByOwner(ctx, ownerID)
}

func (r *GoalRepository) Insert(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	id, err := r.owned.insert(ctx, g)
	if err != nil {
		return nil, err
	}
	created := *g
	created.ID = id
	return &created, nil
}

func (r *GoalRepository) Patch(ctx context.Context, ownerID, id string, patch domain.GoalPatch) (*domain.Goal, error) {
	updated, err := r.owned.updateByOwner(ctx, ownerID, id, goalPatchSet(patch))
	if errors.Is(err, errNoMatch) {
		return nil, domain.ErrGoalNotFound
	}
	return updated, err
}

func (r *GoalRepository) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	if err := r.owned.deleteByOwner(ctx, ownerID, id); err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.ErrGoalNotFound
		}
		return err
	}
	return nil
}

func (r *GoalRepository) EnsureIndexes(ctx context.Context) error {
	return r.owned.ensureOwnerIndex(ctx)
}

// goalPatchSet builds the $set document from the non-nil patch fields.
func goalPatchSet(p domain.GoalPatch) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.TargetAmount != nil {
		set["targetAmount"] = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		set["currentAmount"] = *p.CurrentAmount
	}
	if p.Deadline != nil {
		set["deadline"] = *p.Deadline
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Icon != nil {
		set["icon"] = *p.Icon
	}
	if p.Color != nil {
		set["color"] = *p.Color
	}
	if p.IsCompleted != nil {
		set["isCompleted"] = *p.IsCompleted
	}
	if p.CompletedAt != nil {
		set["completedAt"] = *p.CompletedAt
	}
	if p.UpdatedAt != nil {
		set["updatedAt"] = *p.UpdatedAt
	}
	return set
}
