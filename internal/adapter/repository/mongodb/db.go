// Package mongodb implements the repositories on top of MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	listingsCollection = "listings"
	dealersCollection  = "dealers"
	profilesCollection = "profiles"
)

// Connect establishes a MongoDB connection and verifies it with a
// ping before handing the database back.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to connect to %s: %w", uri, err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb: ping failed: %w", err)
	}
	return client.Database(dbName), nil
}

// Disconnect closes the underlying client with a short grace period.
func Disconnect(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client().Disconnect(ctx)
}
