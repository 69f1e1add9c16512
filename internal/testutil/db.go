package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestMongoEnv names the environment variable holding the MongoDB URI
// used by integration tests. Tests that need a live database skip when
// it is unset, so the default `go test` run stays hermetic.
const TestMongoEnv = "PROFILEHUB_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB instance, creates a database
// unique to this test, ensures the unique indexes the app relies on,
// and registers cleanup that drops the database and disconnects.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(TestMongoEnv)
	if uri == "" {
		t.Skipf("%s not set; skipping MongoDB integration test", TestMongoEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("mongo connect failed: %v", err)
	}

	name := fmt.Sprintf("profilehub_test_%d", time.Now().UnixNano())
	db := client.Database(name)

	if err := ensureUserIndexes(ctx, db); err != nil {
		t.Fatalf("ensure indexes failed: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("drop test database: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("disconnect: %v", err)
		}
	})

	return db
}

// ensureUserIndexes mirrors the unique indexes bootstrap.EnsureSchema
// creates, so duplicate-key behavior is testable.
func ensureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("user").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_1").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1").SetUnique(true),
		},
	})
	return err
}

// TestContext returns a context suitable for one test's store calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
