// Package store provides the token store implementations: a bbolt-backed
// one that survives process restarts (the console's analog of the browser's
// persistent key-value storage) and an in-memory one for tests.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketAuth = []byte("auth")
	keyToken   = []byte("bearer_token")
)

// BoltStore persists exactly one value — the bearer token — in a local
// bbolt file scoped to this installation.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the token database at path.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create token store directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAuth)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init token store: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Set overwrites the stored token.
func (s *BoltStore) Set(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(keyToken, []byte(token))
	})
}

// Get returns the stored token, or "" when none is stored.
func (s *BoltStore) Get() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketAuth).Get(keyToken); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

// Clear removes the stored token. Clearing an empty store is a no-op.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAuth).Delete(keyToken)
	})
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
