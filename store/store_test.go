package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Bowya123/swiggybackend/db"

	"go.mongodb.org/mongo-driver/mongo"
)

// setupTestDB connects to the instance named by MONGO_TEST_URI and hands
// back a dropped-clean database with indexes in place. Tests using it are
// skipped when no instance is available.
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, uri, "swiggy_test")
	if err != nil {
		t.Fatalf("Unable to connect to test database: %v", err)
	}
	if err := database.Drop(ctx); err != nil {
		t.Fatalf("Failed to drop test database: %v", err)
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Client().Disconnect(context.Background())
	})
	return database
}
