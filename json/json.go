// Package json implements [oreum.Storage] as a single JSON object file.
//
// Every write rewrites the whole file through a temp file and a rename, so
// a crash leaves either the old or the new contents on disk.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/oreum-app/oreum"
)

// Interface compliance check.
var _ oreum.Storage = (*Storage)(nil)

// envelope is the v1 wire format of the storage file.
type envelope struct {
	Version int               `json:"version"`
	Items   map[string]string `json:"items"`
}

// Storage is a file-backed key-value store.
type Storage struct {
	path string
	mu   sync.Mutex
}

// New returns a Storage persisting to path. The file is created on the
// first write.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Get returns the value stored under key.
func (s *Storage) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Storage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	items[key] = value
	return s.save(items)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Storage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.save(items)
}

func (s *Storage) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	if env.Items == nil {
		env.Items = map[string]string{}
	}
	return env.Items, nil
}

func (s *Storage) save(items map[string]string) error {
	data, err := json.MarshalIndent(envelope{Version: 1, Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
