package database

import (
	"context"
	"log"
	"time"

	"trabby/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient is the shared MongoDB client, set once by InitDB.
var MongoClient *mongo.Client

// InitDB connects to MongoDB using DATABASE_URL and verifies the connection
// with a ping. Booking records cannot be stored without it, so failure is
// fatal at startup.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	log.Println("Connected to MongoDB")
}
