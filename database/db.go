package database

import (
	"context"
	"log"
	"time"

	"oncall/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// Handle returns the application database.
func Handle() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Ping checks store connectivity.
func Ping(ctx context.Context) error {
	return MongoClient.Ping(ctx, nil)
}

// ListCollections returns the collection names of the application database,
// capped at limit. Used by the diagnostics endpoint.
func ListCollections(ctx context.Context, limit int) ([]string, error) {
	names, err := Handle().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
