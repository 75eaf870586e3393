package databases

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kulsum-786/student-disengagement-prediction/internals/configs"
)

var Client *mongo.Client

// ConnectMongo builds the MongoDB client and returns the dashboard database.
// An unreachable server is only a warning here: the scoring pipeline works
// without persistence, and each upsert surfaces its own error.
func ConnectMongo() *mongo.Database {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(configs.MongoURI))
	if err != nil {
		log.Fatalf("❌ Invalid MongoDB configuration: %v", err)
	}
	Client = client

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("[WARN] MongoDB not reachable at startup: %v (snapshots will fail until it is)", err)
	} else {
		log.Println("✅ MongoDB connected.")
	}

	return client.Database(configs.MongoDBName)
}

// CloseMongo releases the client's connection pool on shutdown.
func CloseMongo() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Println("[WARN] MongoDB disconnect:", err)
	}
}

// Ping reports store reachability for the health endpoint.
func Ping(ctx context.Context) error {
	if Client == nil {
		return mongo.ErrClientDisconnected
	}
	return Client.Ping(ctx, nil)
}
