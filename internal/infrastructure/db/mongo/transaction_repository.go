package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

const collectionTransactions = "transactions"

type TransactionRepository struct {
	owned ownedCollection[domain.Transaction]
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{owned: ownedCollection[domain.Transaction]{col: db.Collection(collectionTransactions)}}
}

func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	return r.owned.listByOwner(ctx, ownerID)
}

func (r *TransactionRepository) Insert(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	id, err := r.owned.insert(ctx, t)
	if err != nil {
		return nil, err
	}
	created := *t
	created.ID = id
	return &created, nil
}

// Replace overwrites every editable field; transaction updates are a full
// replace, not a merge.
func (r *TransactionRepository) Replace(ctx context.Context, ownerID, id string, draft domain.TransactionDraft) (*domain.Transaction, error) {
	set := bson.M{
		"amount":      draft.Amount,
		"description": draft.Description,
		"categoryId":  draft.CategoryID,
		"date":        draft.Date,
		"type":        draft.Type,
		"paymentMode": draft.PaymentMode,
	}
	updated, err := r.owned.updateByOwner(ctx, ownerID, id, set)
	if errors.Is(err, errNoMatch) {
		return nil, domain.ErrTransactionNotFound
	}
	return updated, err
}

func (r *TransactionRepository) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	if err := r.owned.deleteByOwner(ctx, ownerID, id); err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.ErrTransactionNotFound
		}
		return err
	}
	return nil
}

// FindBySyncKey returns the transactions stored by a previous sync batch
// carrying the given idempotency key.
func (r *TransactionRepository) FindBySyncKey(ctx context.Context, ownerID, key string) ([]domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.owned.col.Find(ctx, bson.M{"user_id": ownerID, "sync_key": key})
	if err != nil {
		return nil, fmt.Errorf("find by sync key: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Transaction{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return out, nil
}

func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	return r.owned.ensureOwnerIndex(ctx)
}
