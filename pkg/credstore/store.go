// Package credstore persists the bearer token and user profile of the admin
// console between runs.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketAuth = []byte("auth")
	keyToken   = []byte("authToken")
	keyUser    = []byte("user")
)

// ErrNoSession is returned by User when nobody is logged in.
var ErrNoSession = errors.New("not logged in")

// Store is a bbolt-backed credential store. It satisfies apiclient.Credentials.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the store file at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credential dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open credential db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAuth)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create auth bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored session.
func (s *Store) Save(token string, user json.RawMessage) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAuth)
		if err := b.Put(keyToken, []byte(token)); err != nil {
			return err
		}
		if len(user) == 0 {
			return b.Delete(keyUser)
		}
		return b.Put(keyUser, user)
	})
}

// Token returns the stored bearer token, or "" when there is none.
func (s *Store) Token() string {
	var token string
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketAuth).Get(keyToken); v != nil {
			token = string(v)
		}
		return nil
	})
	return token
}

// User returns the stored profile.
func (s *Store) User() (json.RawMessage, error) {
	var user json.RawMessage
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketAuth).Get(keyUser)
		if v == nil {
			return ErrNoSession
		}
		// bbolt values are only valid inside the transaction.
		user = append(json.RawMessage(nil), v...)
		return nil
	})
	return user, err
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAuth)
		if err := b.Delete(keyToken); err != nil {
			return err
		}
		return b.Delete(keyUser)
	})
}
