// Package mongo implements the document store on MongoDB.
// Each collection of the store maps to a MongoDB collection of the configured database.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	_ ports.DocumentStore  = (*Store)(nil)
	_ ports.StoreInspector = (*Store)(nil)
)

// Store is a DocumentStore backed by a MongoDB database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for uri, checks that the server answers and
// returns a store over the database named dbName.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Join(fmt.Errorf("ping mongodb: %w", err), client.Disconnect(ctx))
	}

	return NewStore(client, dbName), nil
}

// NewStore wraps a connected client. Connect is the usual entry point;
// NewStore skips the initial ping.
func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{client: client, db: client.Database(dbName)}
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// CreateDocument inserts doc and returns the hex form of the generated ObjectID.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc ports.Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", storeError("create document in "+collection, err)
	}

	return idString(res.InsertedID), nil
}

// GetDocuments returns matching documents in natural order. The "_id" of
// every document is rendered as a string.
func (s *Store) GetDocuments(
	ctx context.Context,
	collection string,
	filter ports.Filter,
	limit int,
) ([]ports.Document, error) {
	query := bson.M{}
	for key, value := range filter {
		query[key] = value
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, storeError("get documents from "+collection, err)
	}

	var raw []bson.M
	if err = cursor.All(ctx, &raw); err != nil {
		return nil, storeError("get documents from "+collection, err)
	}

	docs := make([]ports.Document, 0, len(raw))
	for _, m := range raw {
		doc := ports.Document(m)
		if id, ok := doc[docstore.IDField]; ok {
			doc[docstore.IDField] = idString(id)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// DatabaseName implements ports.StoreInspector.
func (s *Store) DatabaseName() string {
	return s.db.Name()
}

// Ping implements ports.StoreInspector.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ListCollections implements ports.StoreInspector.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, storeError("list collections", err)
	}
	return names, nil
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
