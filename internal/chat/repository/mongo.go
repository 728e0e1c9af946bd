package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/formaltex/formal/backend/api/internal/chat"
)

// MongoRepo implements a MongoDB-backed repository for chat messages.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, msg *chat.Message) error {
	_, err := m.col.InsertOne(ctx, msg)
	return err
}
