package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formaltex/formal/backend/api/internal/template"
)

// MongoRepo implements a MongoDB-backed repository for templates.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, t *template.Template) error {
	_, err := m.col.InsertOne(ctx, t)
	return err
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*template.Template, error) {
	var t template.Template
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (m *MongoRepo) List(ctx context.Context, category string) ([]*template.Template, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*template.Template{}
	for cur.Next(ctx) {
		var t template.Template
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, cur.Err()
}

func (m *MongoRepo) CountBuiltin(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{"is_builtin": true})
}
