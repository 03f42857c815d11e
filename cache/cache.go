// Package cache provides translation store implementations.
package cache

// Store is the interface for persisted translation caching.
type Store interface {
	// Get retrieves a cached translation. Returns empty string and false if not found.
	Get(key string) (string, bool)

	// Set stores a single translation and persists it immediately.
	Set(key string, value string) error

	// SetBatch stores many translations under one persistence operation.
	// Flush cost must not scale per-entry.
	SetBatch(entries map[string]string) error
}
