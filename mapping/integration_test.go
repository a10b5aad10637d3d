//go:build integration
// +build integration

package mapping_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/makito233/fin-erp-yml-config/mapping"

	_ "github.com/lib/pq"
)

// setupTestDB creates a PostgreSQL container and returns a connection
func setupTestDB(t *testing.T) (*sql.DB, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "mapping_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	connStr := fmt.Sprintf("host=%s port=%s user=test password=test dbname=mapping_test sslmode=disable", host, port.Port())

	// Wait for connection to be available
	var db *sql.DB
	for i := 0; i < 30; i++ {
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	migrationSQL, err := os.ReadFile(filepath.Join("..", "migrations", "000001_create_configurations.up.sql"))
	if err != nil {
		migrationSQL, err = os.ReadFile(filepath.Join("migrations", "000001_create_configurations.up.sql"))
		if err != nil {
			t.Fatalf("Failed to read migration file: %v", err)
		}
	}

	if _, err = db.Exec(string(migrationSQL)); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		db.Close()
		postgresContainer.Terminate(ctx)
	}

	return db, cleanup
}

const storedYAML = `fieldMappings:
  orderCode:
    type: string
    expressionsByCountry:
      - countries: [ 'ES' ]
        expression: "#input.orderMetadata.orderCode"
conditionMappings: []
`

func TestPostgresConfigStore_BasicCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := mapping.NewPostgresConfigStore(db)

	id := uuid.New().String()
	cfg := &mapping.StoredConfiguration{
		ID:   id,
		Name: "sap-order-payload-mapping",
		YAML: storedYAML,
	}

	if err := store.Add(cfg); err != nil {
		t.Fatalf("Failed to add configuration: %v", err)
	}
	if cfg.CreatedAt.IsZero() || cfg.UpdatedAt.IsZero() {
		t.Error("Add should set timestamps")
	}

	retrieved, err := store.Get(id)
	if err != nil {
		t.Fatalf("Failed to get configuration: %v", err)
	}
	if retrieved.Name != "sap-order-payload-mapping" {
		t.Errorf("Expected name 'sap-order-payload-mapping', got '%s'", retrieved.Name)
	}
	if retrieved.YAML != storedYAML {
		t.Error("YAML should round-trip through the database unchanged")
	}

	// The stored YAML stays parseable
	if _, err := mapping.Parse([]byte(retrieved.YAML)); err != nil {
		t.Errorf("Stored YAML failed to parse: %v", err)
	}

	cfg.Name = "updated-mapping"
	if err := store.Update(cfg); err != nil {
		t.Fatalf("Failed to update configuration: %v", err)
	}

	updated, err := store.Get(id)
	if err != nil {
		t.Fatalf("Failed to get updated configuration: %v", err)
	}
	if updated.Name != "updated-mapping" {
		t.Errorf("Expected name 'updated-mapping', got '%s'", updated.Name)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Error("UpdatedAt should not precede CreatedAt")
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Failed to delete configuration: %v", err)
	}
	if _, err := store.Get(id); err == nil {
		t.Error("Expected error when getting deleted configuration, got nil")
	}
}

func TestPostgresConfigStore_DuplicateID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := mapping.NewPostgresConfigStore(db)

	cfg := &mapping.StoredConfiguration{
		ID:   uuid.New().String(),
		Name: "first",
		YAML: storedYAML,
	}
	if err := store.Add(cfg); err != nil {
		t.Fatalf("Failed to add configuration: %v", err)
	}
	if err := store.Add(cfg); err == nil {
		t.Error("Expected error when adding duplicate configuration, got nil")
	}
}

func TestPostgresConfigStore_UpdateNonExistent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := mapping.NewPostgresConfigStore(db)

	cfg := &mapping.StoredConfiguration{
		ID:   uuid.New().String(),
		Name: "ghost",
		YAML: storedYAML,
	}
	if err := store.Update(cfg); err == nil {
		t.Error("Expected error when updating non-existent configuration, got nil")
	}
}

func TestPostgresConfigStore_DeleteNonExistent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := mapping.NewPostgresConfigStore(db)

	if err := store.Delete(uuid.New().String()); err == nil {
		t.Error("Expected error when deleting non-existent configuration, got nil")
	}
}

func TestPostgresConfigStore_ListOrdering(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := mapping.NewPostgresConfigStore(db)

	for i := 1; i <= 5; i++ {
		cfg := &mapping.StoredConfiguration{
			ID:   uuid.New().String(),
			Name: fmt.Sprintf("config-%d", i),
			YAML: storedYAML,
		}
		if err := store.Add(cfg); err != nil {
			t.Fatalf("Failed to add configuration %d: %v", i, err)
		}
		time.Sleep(10 * time.Millisecond) // Ensure different timestamps
	}

	list, err := store.List()
	if err != nil {
		t.Fatalf("Failed to list configurations: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("Expected 5 configurations, got %d", len(list))
	}

	for i := 0; i < len(list)-1; i++ {
		if list[i].CreatedAt.After(list[i+1].CreatedAt) {
			t.Error("Configurations are not ordered by created_at ascending")
		}
	}
}
