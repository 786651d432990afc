package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/joho/godotenv"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const migrationsTable = "schema_migrations"

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "estate-db"), "Spanner database ID")
	migrateDir = flag.String("migrations", "migrations", "Directory containing migration SQL files")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	ctx := context.Background()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Printf("Using Spanner emulator at %s", host)
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully!")
}

func dbPath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)
}

func run(ctx context.Context) error {
	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		if err := ensureInstance(ctx); err != nil {
			return fmt.Errorf("failed to ensure instance: %w", err)
		}
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	if err := ensureDatabase(ctx, adminClient); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	if err := ensureMigrationsTable(ctx, adminClient); err != nil {
		return err
	}

	client, err := spanner.NewClient(ctx, dbPath())
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	return applyMigrations(ctx, adminClient, client)
}

// ensureInstance creates the emulator instance. Real instances are provisioned
// outside this tool.
func ensureInstance(ctx context.Context) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	name := fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID)
	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: name})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check instance: %w", err)
	}

	log.Printf("Creating instance %s...", *instanceID)
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", *projectID),
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance: %w", err)
	}
	return nil
}

func ensureDatabase(ctx context.Context, adminClient *database.DatabaseAdminClient) error {
	_, err := adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: dbPath()})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Printf("Creating database %s...", *databaseID)
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func ensureMigrationsTable(ctx context.Context, adminClient *database.DatabaseAdminClient) error {
	ddl, err := adminClient.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: dbPath()})
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	for _, stmt := range ddl.GetStatements() {
		if strings.HasPrefix(stmt, "CREATE TABLE "+migrationsTable+" ") {
			return nil
		}
	}

	op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database: dbPath(),
		Statements: []string{
			fmt.Sprintf("CREATE TABLE %s (name STRING(256) NOT NULL, applied_at TIMESTAMP NOT NULL OPTIONS (allow_commit_timestamp=true)) PRIMARY KEY (name)", migrationsTable),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", migrationsTable, err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to create %s: %w", migrationsTable, err)
	}
	return nil
}

// applyMigrations runs every file not yet recorded in schema_migrations, in
// lexical order.
func applyMigrations(ctx context.Context, adminClient *database.DatabaseAdminClient, client *spanner.Client) error {
	files, err := filepath.Glob(filepath.Join(*migrateDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		log.Println("No migration files found")
		return nil
	}

	applied, err := appliedMigrations(ctx, client)
	if err != nil {
		return err
	}

	for _, file := range files {
		name := filepath.Base(file)
		if applied[name] {
			continue
		}
		log.Printf("Applying %s...", name)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   dbPath(),
			Statements: splitDDLStatements(string(content)),
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}

		if _, err := client.Apply(ctx, []*spanner.Mutation{
			spanner.Insert(migrationsTable, []string{"name", "applied_at"}, []interface{}{name, spanner.CommitTimestamp}),
		}); err != nil {
			return fmt.Errorf("failed to record %s: %w", name, err)
		}
		log.Printf("Successfully applied %s", name)
	}
	return nil
}

func appliedMigrations(ctx context.Context, client *spanner.Client) (map[string]bool, error) {
	iter := client.Single().Read(ctx, migrationsTable, spanner.AllKeys(), []string{"name"})
	defer iter.Stop()

	applied := map[string]bool{}
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return applied, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", migrationsTable, err)
		}
		var name string
		if err := row.Columns(&name); err != nil {
			return nil, fmt.Errorf("failed to parse %s row: %w", migrationsTable, err)
		}
		applied[name] = true
	}
}

// splitDDLStatements drops comment lines and splits on semicolons.
func splitDDLStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
