// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadline/internal/db"
	"leadline/internal/models"
)

// TestDB creates a test database connection and returns a cleanup function.
// Skips the test when TEST_DATABASE_URL is not set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM qualification_outcomes")
	pool.Exec(ctx, "DELETE FROM call_summaries")
	pool.Exec(ctx, "DELETE FROM activity_log")
}

// CreateTestActivity inserts an activity entry and returns it with its ID set.
func CreateTestActivity(t *testing.T, database *db.DB, tool, conversation string) *models.ActivityEntry {
	t.Helper()
	ctx := context.Background()

	entry := &models.ActivityEntry{
		ToolUsed:       tool,
		ConversationID: conversation,
		CallerCompany:  "Test Co",
		Status:         "success",
	}
	if err := database.InsertActivity(ctx, entry); err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}

	return entry
}

// BackdateActivity moves an activity entry's created_at into the past.
func BackdateActivity(t *testing.T, database *db.DB, id uuid.UUID, age time.Duration) {
	t.Helper()
	ctx := context.Background()

	_, err := database.Pool.Exec(ctx, `
		UPDATE activity_log SET created_at = NOW() - $2::interval WHERE id = $1
	`, id, age.String())
	if err != nil {
		t.Fatalf("failed to backdate activity: %v", err)
	}
}
