package store

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testStore connects to the instance named by TEST_MONGO_URI and hands
// back a Store over a scratch database. Skipped when no instance is
// available.
func testStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	db := client.Database("bonsaiShop_test")
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		_ = db.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})

	return New(db)
}

func insertedID(t *testing.T, res *mongo.InsertOneResult) primitive.ObjectID {
	t.Helper()
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		t.Fatalf("expected ObjectID, got %T", res.InsertedID)
	}
	return id
}

func TestInsertThenFindRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	res, err := s.InsertOne(ctx, Trees, bson.M{"name": "Juniper", "price": 120.0})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	id := insertedID(t, res)

	doc, err := s.FindByID(ctx, Trees, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if doc == nil {
		t.Fatal("expected inserted document to be found")
	}
	if doc["name"] != "Juniper" {
		t.Fatalf("expected name Juniper, got %v", doc["name"])
	}
	if doc["_id"] != id {
		t.Fatalf("expected _id %v, got %v", id, doc["_id"])
	}
}

func TestListAllReturnsEveryDocument(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.InsertOne(ctx, Reviews, bson.M{"rating": i}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	docs, err := s.ListAll(ctx, Reviews)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	res, err := s.InsertOne(ctx, Trees, bson.M{"name": "Ficus"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	id := insertedID(t, res)

	del, err := s.DeleteByID(ctx, Trees, id)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if del.DeletedCount != 1 {
		t.Fatalf("expected deletedCount 1, got %d", del.DeletedCount)
	}

	doc, err := s.FindByID(ctx, Trees, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if doc != nil {
		t.Fatalf("expected document gone, got %v", doc)
	}
}

func TestFindAbsentIsNilNotError(t *testing.T) {
	s := testStore(t)

	doc, err := s.FindByID(context.Background(), Orders, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("expected no error for absent document, got %v", err)
	}
	if doc != nil {
		t.Fatalf("expected nil document, got %v", doc)
	}
}

func TestSetFieldsUpsertCreatesThenUpdates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	id := primitive.NewObjectID()
	filter := bson.M{"_id": id}

	first, err := s.SetFields(ctx, Orders, filter, bson.M{"status": "Shipped"}, true)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.UpsertedID == nil {
		t.Fatal("expected first call to upsert a new document")
	}

	second, err := s.SetFields(ctx, Orders, filter, bson.M{"status": "Shipped"}, true)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if second.MatchedCount != 1 {
		t.Fatalf("expected second call to match existing document, got %d", second.MatchedCount)
	}
	if second.ModifiedCount != 0 {
		t.Fatalf("expected no-op on identical patch, got modifiedCount %d", second.ModifiedCount)
	}

	docs, err := s.ListAll(ctx, Orders)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected exactly one upserted document, got %d", len(docs))
	}
}

func TestSetFieldsWithoutUpsertMatchesNothing(t *testing.T) {
	s := testStore(t)

	res, err := s.SetFields(context.Background(), Orders,
		bson.M{"_id": primitive.NewObjectID()}, bson.M{"payment": bson.M{"txn": "abc"}}, false)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if res.MatchedCount != 0 || res.UpsertedID != nil {
		t.Fatalf("expected strict update to touch nothing, got %+v", res)
	}
}

func TestOrderLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	res, err := s.InsertOne(ctx, Orders, bson.M{"item": "bonsai-1", "price": 50})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	id := insertedID(t, res)

	if _, err := s.SetFields(ctx, Orders, bson.M{"_id": id}, bson.M{"status": "Shipped"}, true); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if _, err := s.SetFields(ctx, Orders, bson.M{"_id": id}, bson.M{"payment": bson.M{"txn": "abc"}}, false); err != nil {
		t.Fatalf("payment update failed: %v", err)
	}

	doc, err := s.FindByID(ctx, Orders, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if doc["status"] != "Shipped" {
		t.Fatalf("expected status Shipped, got %v", doc["status"])
	}
	payment, ok := doc["payment"].(bson.M)
	if !ok || payment["txn"] != "abc" {
		t.Fatalf("expected payment txn abc, got %v", doc["payment"])
	}
}
