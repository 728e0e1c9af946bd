package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formaltex/formal/backend/api/pkg/logger"
)

// ConnectMongo opens a connection, verifies it with a ping and returns the
// client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the secondary indexes each collection relies on.
// Index creation is best-effort: a failed statement is logged as a warning
// and the remaining statements still run.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	type idx struct {
		collection string
		model      mongo.IndexModel
	}
	unique := options.Index().SetUnique(true)
	specs := []idx{
		{"documents", mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		{"documents", mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: 1}}}},
		{"documents", mongo.IndexModel{Keys: bson.D{{Key: "tags", Value: 1}}}},
		{"templates", mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		{"templates", mongo.IndexModel{Keys: bson.D{{Key: "category", Value: 1}}}},
		{"templates", mongo.IndexModel{Keys: bson.D{{Key: "is_builtin", Value: 1}}}},
		{"chat_messages", mongo.IndexModel{Keys: bson.D{{Key: "document_id", Value: 1}}}},
		{"chat_messages", mongo.IndexModel{Keys: bson.D{{Key: "timestamp", Value: 1}}}},
	}
	for _, s := range specs {
		if _, err := db.Collection(s.collection).Indexes().CreateOne(ctx, s.model); err != nil {
			logger.Warnf("failed to create index on %s: %v", s.collection, err)
		}
	}
	logger.Info("database indexes ensured")
}
