// Package storage owns the wallet's single SQLite connection and exposes the
// accounts and cache record stores on top of it.
//
// All access goes through one mutex: every operation holds it for its whole
// duration and nothing under it talks to the network.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// MemoryPath opens an ephemeral database
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    seed TEXT NOT NULL,
    pubkey TEXT NOT NULL,
    passphrase TEXT NOT NULL,
    balance INTEGER NULL
);

CREATE TABLE IF NOT EXISTS cache (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Handle is the shared database connection
type Handle struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the database file at path.
// MemoryPath gives an in-memory database that lives as long as the handle.
func Open(path string) (*Handle, error) {
	if path == "" {
		return nil, ioErr("open", fmt.Errorf("empty database path"))
	}

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, ioErr("create database dir", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, ioErr("open sqlite", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, ioErr("ping sqlite", err)
	}

	return New(db), nil
}

// New wraps an already opened pool. The pool is pinned to a single connection,
// which also keeps an in-memory database alive across calls.
func New(db *sql.DB) *Handle {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	return &Handle{db: db}
}

// EnsureSchema creates the accounts and cache tables if they are missing
func (h *Handle) EnsureSchema() error {
	return h.do(func(db *sql.DB) error {
		if _, err := db.Exec(schema); err != nil {
			return schemaErr("create schema", err)
		}
		return nil
	})
}

// Close releases the connection
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.db.Close(); err != nil {
		return ioErr("close", err)
	}
	return nil
}

// Accounts returns the accounts record store
func (h *Handle) Accounts() *Accounts {
	return &Accounts{h: h}
}

// Cache returns the cache record store
func (h *Handle) Cache() *Cache {
	return &Cache{h: h}
}

func (h *Handle) do(fn func(db *sql.DB) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.db)
}
