package mapping

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresConfigStore implements ConfigStore backed by PostgreSQL.
type PostgresConfigStore struct {
	db *sql.DB
}

// NewPostgresConfigStore creates a PostgreSQL-backed ConfigStore.
func NewPostgresConfigStore(db *sql.DB) *PostgresConfigStore {
	return &PostgresConfigStore{db: db}
}

// Add inserts a new configuration.
func (s *PostgresConfigStore) Add(c *StoredConfiguration) error {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM configurations WHERE id = $1)
	`, c.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check configuration existence: %w", err)
	}
	if exists {
		return fmt.Errorf("configuration with ID %s already exists", c.ID)
	}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err = s.db.Exec(`
		INSERT INTO configurations (id, name, yaml, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.YAML, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert configuration: %w", err)
	}

	return nil
}

// Get retrieves a configuration by ID.
func (s *PostgresConfigStore) Get(id string) (*StoredConfiguration, error) {
	var c StoredConfiguration
	err := s.db.QueryRow(`
		SELECT id, name, yaml, created_at, updated_at
		FROM configurations
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.YAML, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("configuration %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	return &c, nil
}

// List returns all configurations ordered by creation time.
func (s *PostgresConfigStore) List() ([]*StoredConfiguration, error) {
	rows, err := s.db.Query(`
		SELECT id, name, yaml, created_at, updated_at
		FROM configurations
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	defer rows.Close()

	var list []*StoredConfiguration
	for rows.Next() {
		var c StoredConfiguration
		if err := rows.Scan(&c.ID, &c.Name, &c.YAML, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan configuration: %w", err)
		}
		list = append(list, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating configurations: %w", err)
	}

	return list, nil
}

// Update modifies an existing configuration.
func (s *PostgresConfigStore) Update(c *StoredConfiguration) error {
	c.UpdatedAt = time.Now()

	result, err := s.db.Exec(`
		UPDATE configurations
		SET name = $1, yaml = $2, updated_at = $3
		WHERE id = $4
	`, c.Name, c.YAML, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("failed to update configuration: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("configuration %s not found", c.ID)
	}

	return nil
}

// Delete removes a configuration.
func (s *PostgresConfigStore) Delete(id string) error {
	result, err := s.db.Exec(`
		DELETE FROM configurations
		WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete configuration: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("configuration %s not found", id)
	}

	return nil
}
