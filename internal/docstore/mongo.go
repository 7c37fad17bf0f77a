package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoStore keeps one mongo record per document key.
// The document itself is stored as its JSON text so field names and
// number formats come back exactly as written.
type MongoStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

type mongoRecord struct {
	Key       string    `bson:"_id"`
	Body      string    `bson:"body"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoClient connects to uri and pings the server.
func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

// NewMongoStore uses collection of database on client.
func NewMongoStore(client *mongo.Client, database, collection string, logger *zap.Logger) *MongoStore {
	return &MongoStore{
		collection: client.Database(database).Collection(collection),
		logger:     logger,
	}
}

// Get loads the document stored under key.
func (m *MongoStore) Get(ctx context.Context, key string) (Document, error) {
	var rec mongoRecord
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find document %s: %w", key, err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(rec.Body), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", key, err)
	}
	return doc, nil
}

// Set upserts doc under key.
func (m *MongoStore) Set(ctx context.Context, key string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	rec := mongoRecord{Key: key, Body: string(data), UpdatedAt: time.Now().UTC()}
	_, err = m.collection.ReplaceOne(ctx, bson.M{"_id": key}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert document %s: %w", key, err)
	}

	m.logger.Debug("Document stored in mongo", zap.String("key", key))
	return nil
}
