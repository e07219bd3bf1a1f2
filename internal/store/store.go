package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the storefront.
const (
	Trees   = "trees"
	Orders  = "orders"
	Users   = "users"
	Reviews = "reviews"
)

const opTimeout = 5 * time.Second

// Store executes single round-trip document operations against one
// database. Documents are schemaless; callers decide which fields of the
// returned bson.M values they care about. There is no caching, no retry
// and no transaction spanning calls.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ListAll returns every document in the collection. Order is whatever the
// server hands back.
func (s *Store) ListAll(ctx context.Context, coll string) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.db.Collection(coll).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Store) FindByID(ctx context.Context, coll string, id primitive.ObjectID) (bson.M, error) {
	return s.FindOneByField(ctx, coll, "_id", id)
}

// FindOneByField returns (nil, nil) when nothing matches; absence is not
// an error at this layer.
func (s *Store) FindOneByField(ctx context.Context, coll, field string, value interface{}) (bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc bson.M
	err := s.db.Collection(coll).FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// InsertOne stores the document verbatim and returns the driver's raw
// acknowledgment.
func (s *Store) InsertOne(ctx context.Context, coll string, doc bson.M) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.db.Collection(coll).InsertOne(ctx, doc)
}

// SetFields applies a $set patch to at most one document matching filter.
// With upsert, a non-matching filter creates a new document holding only
// the patch fields.
func (s *Store) SetFields(ctx context.Context, coll string, filter, fields bson.M, upsert bool) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": fields}
	opts := options.Update().SetUpsert(upsert)
	return s.db.Collection(coll).UpdateOne(ctx, filter, update, opts)
}

func (s *Store) DeleteByID(ctx context.Context, coll string, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": id})
}
