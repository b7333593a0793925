// internal/app/store/explorations/store.go
package explorations

import (
	"context"

	"github.com/dalemusser/creatorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads explorations. Writes belong to the editor service.
type Store struct {
	c *mongo.Collection
}

// New creates a new explorations Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("explorations")}
}

// ListByOwner returns every exploration owned by ownerID, most recently
// updated first. Returns an empty (non-nil) slice when there are none.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Exploration, error) {
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

	out := make([]models.Exploration, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads one exploration.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Exploration, error) {
	var e models.Exploration
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	return e, err
}

// IsOwner reports whether ownerID is one of the exploration's owners.
func (s *Store) IsOwner(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"_id": id, "owner_ids": ownerID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DistinctOwners returns every user id that owns at least one exploration.
func (s *Store) DistinctOwners(ctx context.Context) ([]primitive.ObjectID, error) {
	raw, err := s.c.Distinct(ctx, "owner_ids", bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if oid, ok := v.(primitive.ObjectID); ok {
			out = append(out, oid)
		}
	}
	return out, nil
}
