package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"she-fix/internal/dto/response"
)

// FileSessionStore keeps the logged-in user record as a JSON file so the session
// survives restarts. Sessions never expire.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Path() string {
	return s.path
}

// Save replaces the stored record. The write goes through a temp file so a crash
// never leaves a half-written session.
func (s *FileSessionStore) Save(user *response.UserResponse) error {
	if user == nil {
		return errors.New("session: nil user")
	}

	b, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: replace: %w", err)
	}
	return nil
}

// Load returns nil, nil when no session was saved.
func (s *FileSessionStore) Load() (*response.UserResponse, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read: %w", err)
	}

	var user response.UserResponse
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	return &user, nil
}

// Clear logs out. Clearing an empty store is not an error.
func (s *FileSessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove: %w", err)
	}
	return nil
}
