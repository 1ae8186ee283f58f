package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps scores in a small JSON object on disk
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path; the file is created on first Set
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get retrieves a score, returning 0 when the file or key does not exist
func (s *FileStore) Get(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scores, err := s.read()
	if err != nil {
		return 0, err
	}
	return scores[key], nil
}

// Set stores a score, replacing the file atomically
func (s *FileStore) Set(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	scores, err := s.read()
	if err != nil {
		return err
	}
	scores[key] = value
	return s.write(scores)
}

func (s *FileStore) read() (map[string]int, error) {
	scores := make(map[string]int)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return scores, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return scores, nil
	}
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return scores, nil
}

func (s *FileStore) write(scores map[string]int) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating score dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scores-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
