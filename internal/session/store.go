// Package session owns the locally persisted authentication state: the access
// token and the cached user snapshot, with an explicit load/save/clear
// lifecycle instead of ambient storage access.
package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// Snapshot is the durable projection of a session: the bearer token plus the
// last known user. It is written on login/refresh and cleared wholesale.
type Snapshot struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user,omitempty"`
}

// Store persists session snapshots. Load returns (nil, nil) when no session
// has been saved.
type Store interface {
	Load() (*Snapshot, error)
	Save(snapshot *Snapshot) error
	Clear() error
}

// FileStore persists the snapshot as a JSON file.
type FileStore struct {
	filePath string
}

// NewFileStore creates a FileStore, ensuring the parent directory exists.
func NewFileStore(filePath string) (*FileStore, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("session file path cannot be empty")
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory for session file '%s': %w", dir, err)
	}

	return &FileStore{filePath: filePath}, nil
}

// Load reads the saved snapshot. An unreadable or corrupt file is treated the
// same as no session, so startup never fails on local state.
func (s *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("Discarding corrupt session file %s: %v", s.filePath, err)
		return nil, nil
	}
	return &snapshot, nil
}

// Save writes the snapshot, owner-readable only.
func (s *FileStore) Save(snapshot *Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot *Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, nil
	}
	copied := *s.snapshot
	return &copied, nil
}

func (s *MemoryStore) Save(snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *snapshot
	s.snapshot = &copied
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	return nil
}
