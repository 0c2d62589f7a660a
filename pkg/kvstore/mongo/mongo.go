// Package mongo implements kvstore.Store on a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopping-list/pkg/kvstore"
)

// record is the stored document: one per key.
type record struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store keeps each key as a document in database/collection.
type Store struct {
	client     *mongo.Client
	database   string
	collection string
}

// New connects using uri and pings the server.
func New(ctx context.Context, uri, database, collection string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("kvstore/mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("kvstore/mongo: ping: %w", err)
	}
	return &Store{client: client, database: database, collection: collection}, nil
}

func (s *Store) col() *mongo.Collection {
	return s.client.Database(s.database).Collection(s.collection)
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, kvstore.ErrEmptyKey
	}
	var rec record
	err := s.col().FindOne(ctx, bson.D{bson.E{Key: "_id", Value: key}}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore/mongo: get %s: %w", key, err)
	}
	return rec.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}
	rec := record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.col().ReplaceOne(ctx, bson.D{bson.E{Key: "_id", Value: key}}, rec, opts); err != nil {
		return fmt.Errorf("kvstore/mongo: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}
	if _, err := s.col().DeleteOne(ctx, bson.D{bson.E{Key: "_id", Value: key}}); err != nil {
		return fmt.Errorf("kvstore/mongo: remove %s: %w", key, err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}
