package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// cacheFileName is the single JSON object persisted per cache directory.
const cacheFileName = "translations.json"

// FileStore is a write-through store persisted as one human-readable JSON
// file. The whole file is rewritten on every mutation; there is no append
// log or compaction, which is acceptable while the cache stays small.
//
// FileStore assumes a single process at a time. Concurrent processes
// against the same directory race on the final write (last write wins).
type FileStore struct {
	dir  string
	path string
	data map[string]string
}

// NewFileStore creates a FileStore rooted at dir, loading any previously
// persisted entries. A missing or corrupt cache file degrades to an empty
// store; read failures never escape the constructor, favoring a cold cache
// over hard failure.
func NewFileStore(dir string) *FileStore {
	s := &FileStore{
		dir:  dir,
		path: filepath.Join(dir, cacheFileName),
		data: make(map[string]string),
	}
	s.load()
	return s
}

// load reads the persisted cache file. Any read or decode failure leaves
// the store empty.
func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path) // #nosec G304 - cache dir is caller-provided
	if err != nil {
		return
	}

	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return
	}
	s.data = data
}

// flush rewrites the whole cache file.
func (s *FileStore) flush() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Get retrieves a value from the store.
func (s *FileStore) Get(key string) (string, bool) {
	val, ok := s.data[key]
	return val, ok
}

// Set stores a single value, then persists the entire store synchronously.
func (s *FileStore) Set(key string, value string) error {
	s.data[key] = value
	return s.flush()
}

// SetBatch stores many values under a single flush.
func (s *FileStore) SetBatch(entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	for key, value := range entries {
		s.data[key] = value
	}
	return s.flush()
}

// Len returns the number of entries in the store.
func (s *FileStore) Len() int {
	return len(s.data)
}

// Path returns the location of the persisted cache file.
func (s *FileStore) Path() string {
	return s.path
}

// Verify FileStore implements Store
var _ Store = (*FileStore)(nil)
