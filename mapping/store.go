package mapping

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// StoredConfiguration is a named, versioned-by-timestamp mapping file kept by
// a ConfigStore. The YAML field holds the canonical serialized form; parsing
// it back is the caller's business.
type StoredConfiguration struct {
	ID        string
	Name      string
	YAML      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfigStore manages persistence of named configurations.
type ConfigStore interface {
	// Add a new configuration
	Add(c *StoredConfiguration) error

	// Get a configuration by ID
	Get(id string) (*StoredConfiguration, error)

	// List all configurations, oldest first
	List() ([]*StoredConfiguration, error)

	// Update an existing configuration
	Update(c *StoredConfiguration) error

	// Delete a configuration
	Delete(id string) error
}

// InMemoryConfigStore implements ConfigStore with a map. Thread-safe.
type InMemoryConfigStore struct {
	configs map[string]*StoredConfiguration
	mu      sync.RWMutex
}

// NewInMemoryConfigStore creates an empty in-memory store.
func NewInMemoryConfigStore() *InMemoryConfigStore {
	return &InMemoryConfigStore{
		configs: make(map[string]*StoredConfiguration),
	}
}

// Add stores a new configuration, rejecting duplicate IDs and setting both
// timestamps.
func (s *InMemoryConfigStore) Add(c *StoredConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.configs[c.ID]; exists {
		return fmt.Errorf("configuration with ID %s already exists", c.ID)
	}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.configs[c.ID] = c
	return nil
}

// Get retrieves a configuration by ID.
func (s *InMemoryConfigStore) Get(id string) (*StoredConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.configs[id]
	if !exists {
		return nil, fmt.Errorf("configuration with ID %s not found", id)
	}
	return c, nil
}

// List returns all configurations ordered by creation time.
func (s *InMemoryConfigStore) List() ([]*StoredConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*StoredConfiguration, 0, len(s.configs))
	for _, c := range s.configs {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// Update replaces an existing configuration, preserving CreatedAt.
func (s *InMemoryConfigStore) Update(c *StoredConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.configs[c.ID]
	if !exists {
		return fmt.Errorf("configuration with ID %s not found", c.ID)
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()
	s.configs[c.ID] = c
	return nil
}

// Delete removes a configuration.
func (s *InMemoryConfigStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.configs[id]; !exists {
		return fmt.Errorf("configuration with ID %s not found", id)
	}

	delete(s.configs, id)
	return nil
}
