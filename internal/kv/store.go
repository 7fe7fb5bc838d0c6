package kv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// Store is a namespace of keys within an engine.
type Store struct {
	db     *pebble.DB
	Prefix []byte
}

// BuildKey builds the full key of k
// in the form: prefix + <sep> + 0 + key.
// the 0 separates the key from the prefix so that
// every key of the store sorts before prefix + <sep> + 1.
func BuildKey(prefix, k []byte) []byte {
	key := make([]byte, 0, len(prefix)+len(k)+2)
	key = append(key, prefix...)
	key = append(key, separator, 0)
	return append(key, k...)
}

// TrimPrefix returns the key of the store from a full key.
func TrimPrefix(k []byte, prefix []byte) []byte {
	return k[len(prefix)+2:]
}

// Put stores a key value pair. If it already exists, it overrides it.
func (s *Store) Put(k, v []byte) error {
	if len(k) == 0 {
		return errors.New("cannot store empty key")
	}

	return s.db.Set(BuildKey(s.Prefix, k), v, pebble.Sync)
}

// Get returns a value associated with the given key. If not found, returns ErrKeyNotFound.
func (s *Store) Get(k []byte) ([]byte, error) {
	value, closer, err := s.db.Get(BuildKey(s.Prefix, k))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.WithStack(ErrKeyNotFound)
		}

		return nil, err
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	err = closer.Close()
	if err != nil {
		return nil, err
	}

	return cp, nil
}

// Delete a key. If not found, returns ErrKeyNotFound.
func (s *Store) Delete(k []byte) error {
	key := BuildKey(s.Prefix, k)
	_, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return errors.WithStack(ErrKeyNotFound)
		}

		return err
	}
	if err := closer.Close(); err != nil {
		return err
	}

	return s.db.Delete(key, pebble.Sync)
}

// Iterate calls fn for every key of the store, in order.
// The slices passed to fn are only valid during the call.
func (s *Store) Iterate(fn func(k, v []byte) error) error {
	lower := append(append([]byte{}, s.Prefix...), separator, 0)
	upper := append(append([]byte{}, s.Prefix...), separator, 1)

	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})

	for it.First(); it.Valid(); it.Next() {
		if err := fn(TrimPrefix(it.Key(), s.Prefix), it.Value()); err != nil {
			_ = it.Close()
			return err
		}
	}

	return it.Close()
}
