package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
)

// tables in delete order: children before parents.
var tables = []string{
	"contact_notes",
	"contacts",
	"property_images",
	"property_inquiries",
	"price_history",
	"properties",
	"users",
	"outbox_events",
}

// SetupSpannerTest connects to the emulator database and empties it. The test
// is skipped when SPANNER_EMULATOR_HOST is unset.
func SetupSpannerTest(t *testing.T) *spanner.Client {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)
	t.Cleanup(func() {
		CleanDatabase(t, client)
		client.Close()
	})
	return client
}

// GetTestSpannerDB returns SPANNER_TEST_DATABASE or the emulator default.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/estate-test"
}

// CleanDatabase deletes every row for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	muts := make([]*spanner.Mutation, 0, len(tables))
	for _, table := range tables {
		muts = append(muts, spanner.Delete(table, spanner.AllKeys()))
	}
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}

// OutboxTypes returns the event types written for an aggregate, oldest first.
func OutboxTypes(t *testing.T, client *spanner.Client, aggregateID string) []string {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL:    "SELECT event_type FROM outbox_events WHERE aggregate_id = @id ORDER BY created_at, event_type",
		Params: map[string]interface{}{"id": aggregateID},
	})
	defer iter.Stop()

	var types []string
	err := iter.Do(func(row *spanner.Row) error {
		var eventType string
		if err := row.Columns(&eventType); err != nil {
			return err
		}
		types = append(types, eventType)
		return nil
	})
	require.NoError(t, err, "failed to read outbox events")
	return types
}
