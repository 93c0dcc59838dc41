// Package cache keeps small pieces of session state (selected account, selected
// view) across restarts.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Key is a cache slot. Only the constants below are valid keys.
type Key int

const (
	SelectedAccount Key = iota + 1
	SelectedView
)

// String returns the key as stored in the cache table
func (k Key) String() string {
	switch k {
	case SelectedAccount:
		return "selected_account"
	case SelectedView:
		return "selected_view"
	default:
		panic(fmt.Sprintf("cache: unknown key %d", int(k)))
	}
}

// envelope is the stored shape of every value
type envelope struct {
	Value string `json:"value"`
}

// storedEnvelope tells a missing or null value apart from an empty string
type storedEnvelope struct {
	Value *string `json:"value"`
}

var errMissingValue = errors.New("missing value field")

// CacheError is returned when a stored value cannot be decoded
type CacheError struct {
	Key Key
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("corrupt cache entry %s: %v", e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsCorruptEntry checks if error is a CacheError
func IsCorruptEntry(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr)
}

// Store is the raw key/value persistence used by Cache
type Store interface {
	Put(key, value string) error
	Get(key string) (string, bool, error)
	Delete(key string) error
}

// Cache is a durable key/value store for session state
type Cache struct {
	store Store
}

// New creates a Cache on top of store
func New(store Store) *Cache {
	return &Cache{store: store}
}

// Set stores value under key, replacing any previous value
func (c *Cache) Set(key Key, value string) error {
	data, err := json.Marshal(envelope{Value: value})
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	return c.store.Put(key.String(), string(data))
}

// Get returns the value stored under key. A missing key is reported by the
// boolean, not by an error.
func (c *Cache) Get(key Key) (string, bool, error) {
	raw, found, err := c.store.Get(key.String())
	if err != nil || !found {
		return "", false, err
	}

	var env storedEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return "", false, &CacheError{Key: key, Err: err}
	}
	if env.Value == nil {
		return "", false, &CacheError{Key: key, Err: errMissingValue}
	}
	return *env.Value, true, nil
}

// Remove deletes key; removing a missing key is a no-op
func (c *Cache) Remove(key Key) error {
	return c.store.Delete(key.String())
}
