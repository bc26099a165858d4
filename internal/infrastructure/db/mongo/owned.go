package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// errNoMatch is returned when no document matches both id and owner. Each
// repository maps it to its resource's NotFound error, so a caller cannot
// tell an absent document from one owned by someone else.
var errNoMatch = errors.New("no document matches id and owner")

// ownedCollection wraps a collection of documents carrying a user_id field.
// Every read and write goes through a composite {_id, user_id} filter in a
// single round-trip; ownership is never checked as a separate step.
type ownedCollection[T any] struct {
	col *mongo.Collection
}

// listByOwner returns all documents owned by ownerID in natural order.
func (c *ownedCollection[T]) listByOwner(ctx context.Context, ownerID string) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.col.Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("find by owner: %w", err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	return out, nil
}

// insert persists doc and returns the generated object id as hex.
func (c *ownedCollection[T]) insert(ctx context.Context, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// updateByOwner applies a $set to the document matching both id and owner
// and returns the updated document. A malformed id behaves like a missing
// document.
func (c *ownedCollection[T]) updateByOwner(ctx context.Context, ownerID, id string, set bson.M) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errNoMatch
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "user_id": ownerID}

	var out T
	if len(set) == 0 {
		// Mongo rejects an empty $set; an all-omitted patch is a no-op
		// that still has to prove the document exists and is owned.
		err = c.col.FindOne(ctx, filter).Decode(&out)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = c.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&out)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNoMatch
		}
		return nil, fmt.Errorf("update document: %w", err)
	}
	return &out, nil
}

// deleteByOwner removes the document matching both id and owner.
func (c *ownedCollection[T]) deleteByOwner(ctx context.Context, ownerID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errNoMatch
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if res.DeletedCount == 0 {
		return errNoMatch
	}
	return nil
}

// ensureOwnerIndex creates the user_id index every owned collection carries.
func (c *ownedCollection[T]) ensureOwnerIndex(ctx context.Context) error {
	_, err := c.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
