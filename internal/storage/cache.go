package storage

import (
	"database/sql"
	"errors"
)

// Cache is the record store backed by the cache table
type Cache struct {
	h *Handle
}

// Put inserts or replaces the value stored under key
func (c *Cache) Put(key, value string) error {
	return c.h.do(func(db *sql.DB) error {
		if _, err := db.Exec(`INSERT OR REPLACE INTO cache (key, value) VALUES (?, ?)`, key, value); err != nil {
			return queryErr("put cache", err)
		}
		return nil
	})
}

// Get returns the raw value stored under key and whether it exists
func (c *Cache) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := c.h.do(func(db *sql.DB) error {
		err := db.QueryRow(`SELECT value FROM cache WHERE key = ?`, key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return queryErr("get cache", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return value, found, nil
}

// Delete removes key; deleting a missing key is not an error
func (c *Cache) Delete(key string) error {
	return c.h.do(func(db *sql.DB) error {
		if _, err := db.Exec(`DELETE FROM cache WHERE key = ?`, key); err != nil {
			return queryErr("delete cache", err)
		}
		return nil
	})
}
