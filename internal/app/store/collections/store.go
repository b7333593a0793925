// internal/app/store/collections/store.go
package collections

import (
	"context"

	"github.com/dalemusser/creatorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("collections")}
}

// ListByOwner returns the collections owned by ownerID, most recently
// updated first.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Collection, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "last_updated_msec", Value: -1},
			{Key: "_id", Value: 1},
		})

	cur, err := s.c.Find(ctx, bson.M{"owner_ids": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Collection, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsOwner reports whether ownerID is one of the collection's owners.
func (s *Store) IsOwner(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"_id": id, "owner_ids": ownerID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
