// Package store provides a concurrency-safe in-memory key-value store.
// It backs the locale document cache and any other process-lifetime caches.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("store: key not found")

// Store defines the interface for a byte-oriented key-value store.
type Store interface {
	// Set stores a key-value pair. A ttl of 0 means no expiry.
	Set(key string, value []byte, ttl time.Duration) error
	// Get retrieves a value by its key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// SetNX sets the key only if it does not already exist and reports
	// whether the value was written. The check and write are atomic.
	SetNX(key string, value []byte, ttl time.Duration) (bool, error)
	// Exists checks if a key exists.
	Exists(key string) (bool, error)
	// Delete removes a value by its key.
	Delete(key string) error
	// Clear removes all data.
	Clear() error
	// Close releases resources held by the store.
	Close() error
}
