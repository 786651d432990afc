package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/estate-service/internal/pkg/outbox"
)

func main() {
	_ = godotenv.Load()

	completedDays := int(outbox.DefaultRetention.Completed / (24 * time.Hour))
	failedDays := int(outbox.DefaultRetention.Failed / (24 * time.Hour))

	database := flag.String("database", os.Getenv("SPANNER_DATABASE"), "Spanner database (projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&completedDays, "completed-retention", completedDays, "Retention days for completed events")
	flag.IntVar(&failedDays, "failed-retention", failedDays, "Retention days for failed events")
	dryRun := flag.Bool("dry-run", false, "Show what would be deleted without deleting")
	flag.Parse()

	if *database == "" {
		log.Fatal("Error: -database flag or SPANNER_DATABASE is required")
	}

	retention := outbox.Retention{
		Completed: time.Duration(completedDays) * 24 * time.Hour,
		Failed:    time.Duration(failedDays) * 24 * time.Hour,
	}
	if err := retention.Validate(); err != nil {
		log.Fatalf("Invalid retention: %v", err)
	}

	if err := run(context.Background(), *database, retention, *dryRun); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
	log.Println("Cleanup completed successfully")
}

func run(ctx context.Context, database string, retention outbox.Retention, dryRun bool) error {
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now()
	completed, failed := retention.Cutoffs(now)
	log.Printf("Starting outbox cleanup on %s", database)
	log.Printf("  Completed events cutoff: %s", completed.Format(time.RFC3339))
	log.Printf("  Failed events cutoff: %s", failed.Format(time.RFC3339))

	total, err := countExpired(ctx, client, retention, now)
	if err != nil {
		return err
	}
	if dryRun {
		log.Printf("DRY RUN: would delete %d events", total)
		return nil
	}
	if total == 0 {
		log.Println("No expired events to delete")
		return nil
	}

	deleted, err := client.PartitionedUpdate(ctx, retention.DeleteStmt(now))
	if err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}
	log.Printf("Deleted %d events", deleted)
	return nil
}

func countExpired(ctx context.Context, client *spanner.Client, retention outbox.Retention, now time.Time) (int64, error) {
	iter := client.Single().Query(ctx, retention.CountStmt(now))
	defer iter.Stop()

	var total int64
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return total, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to count events: %w", err)
		}

		var status string
		var count int64
		if err := row.Columns(&status, &count); err != nil {
			return 0, fmt.Errorf("failed to parse row: %w", err)
		}
		log.Printf("  %d expired %s events", count, status)
		total += count
	}
}
