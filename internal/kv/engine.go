// Package kv stores key-value pairs in Pebble.
package kv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

const separator byte = 0x1F

var (
	// ErrKeyNotFound is returned when the targeted key doesn't exist.
	ErrKeyNotFound = errors.New("key not found")
)

// Engine represents a Pebble database.
type Engine struct {
	DB *pebble.DB
}

// NewEngine opens a Pebble database. It takes the same argument as Pebble's Open function.
func NewEngine(path string, opts *pebble.Options) (*Engine, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open pebble database at %q", path)
	}

	return &Engine{
		DB: db,
	}, nil
}

// Store returns the store whose keys all start with prefix.
func (e *Engine) Store(prefix string) *Store {
	return &Store{
		db:     e.DB,
		Prefix: []byte(prefix),
	}
}

// Close the engine and underlying Pebble database.
func (e *Engine) Close() error {
	return e.DB.Close()
}
