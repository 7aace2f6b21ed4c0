// Package jsonfile persists the wallet key-value items in a single JSON file.
//
// Writes go to path+".tmp" first and then replace the file with os.Rename, so a batch
// either lands completely or not at all.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/simaogato/wallet-backend/internal/domain"
)

const (
	storageName   = "json_snapshot"
	formatVersion = 1
)

// Meta describes how and when the file was written
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is the on-disk layout
type Snapshot struct {
	Meta  Meta              `json:"_meta"`
	Items map[string]string `json:"items"`
}

// Store implements domain.KeyValueStore on top of a JSON file.
// Every call re-reads the file, so a later process sees earlier writes, but the
// lock only serialises callers inside one process. Run a single writer per file;
// use the postgres backend when the server and the CLI run side by side.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ domain.KeyValueStore = (*Store)(nil)

// NewStore returns a store backed by path. The parent directory is created if missing.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the backing file location
func (s *Store) Path() string {
	return s.path
}

// GetItem returns the value stored under key
func (s *Store) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := snap.Items[key]
	return v, ok, nil
}

// SetItems merges items into the file and rewrites it atomically
func (s *Store) SetItems(_ context.Context, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	for k, v := range items {
		snap.Items[k] = v
	}
	return s.save(snap)
}

// load reads the snapshot; a missing file is an empty store
func (s *Store) load() (*Snapshot, error) {
	snap := &Snapshot{Items: make(map[string]string)}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snap, nil
		}
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(snap); err != nil {
		return nil, fmt.Errorf("%w: store file %s: %v", domain.ErrCorruptState, s.path, err)
	}
	if snap.Items == nil {
		snap.Items = make(map[string]string)
	}
	return snap, nil
}

func (s *Store) save(snap *Snapshot) error {
	snap.Meta = Meta{
		Storage:   storageName,
		Version:   formatVersion,
		Timestamp: time.Now(),
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
