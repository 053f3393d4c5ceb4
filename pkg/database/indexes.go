package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureResourceIndexes creates the indexes every resource collection
// needs: a 2dsphere index backing proximity queries and a compound index
// covering the active-only rating sort.
func EnsureResourceIndexes(ctx context.Context, db *mongo.Database, collections []string) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "rating", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "address.city", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "address.state", Value: 1}},
		},
	}

	for _, name := range collections {
		_, err := db.Collection(name).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}

	return nil
}
