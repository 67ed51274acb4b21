// Package mongodb provides support for accessing a mongodb database.
package mongodb

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a connection to the specified mongodb server and
// validates the server is reachable.
func Connect(ctx context.Context, host string, username string, password string) (*mongo.Client, error) {
	auth := options.Credential{
		Username: username,
		Password: password,
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(host).SetAuth(auth))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	return client, nil
}

// CreateCollection creates the specified collection if it doesn't
// already exist and returns access to it.
func CreateCollection(ctx context.Context, db *mongo.Database, name string) (*mongo.Collection, error) {
	if err := db.CreateCollection(ctx, name); err != nil {
		if !strings.Contains(err.Error(), "Collection already exists") {
			return nil, fmt.Errorf("create collection: %w", err)
		}
	}

	return db.Collection(name), nil
}

// VectorIndexSettings represents the settings for a vector search index.
type VectorIndexSettings struct {
	NumDimensions int
	Path          string
	Similarity    string
}

// CreateVectorIndex creates a vector search index on the specified
// collection. Creating an index that already exists is not an error.
func CreateVectorIndex(ctx context.Context, col *mongo.Collection, indexName string, settings VectorIndexSettings) error {
	names, err := existingSearchIndexes(ctx, col)
	if err != nil {
		return fmt.Errorf("existing indexes: %w", err)
	}

	for _, name := range names {
		if name == indexName {
			return nil
		}
	}

	def := bson.D{
		{Key: "fields", Value: bson.A{
			bson.D{
				{Key: "type", Value: "vector"},
				{Key: "numDimensions", Value: settings.NumDimensions},
				{Key: "path", Value: settings.Path},
				{Key: "similarity", Value: settings.Similarity},
			},
		}},
	}

	indexType := "vectorSearch"
	model := mongo.SearchIndexModel{
		Definition: def,
		Options: &options.SearchIndexesOptions{
			Name: &indexName,
			Type: &indexType,
		},
	}

	if _, err := col.SearchIndexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create vector index: %w", err)
	}

	return nil
}

func existingSearchIndexes(ctx context.Context, col *mongo.Collection) ([]string, error) {
	cur, err := col.SearchIndexes().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc struct {
			Name string `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		names = append(names, doc.Name)
	}

	return names, nil
}
