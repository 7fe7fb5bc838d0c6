package domain

import (
	"github.com/chaisql/kjson/internal/encoding"
	"github.com/chaisql/kjson/internal/kv"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

const storePrefix = "domain"

// Store persists symbol domains in a Pebble database.
// It is safe for concurrent use.
type Store struct {
	ng *kv.Engine
	st *kv.Store
}

// Open opens or creates the domain store at path.
// opts is passed to Pebble and may be nil.
func Open(path string, opts *pebble.Options) (*Store, error) {
	ng, err := kv.NewEngine(path, opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		ng: ng,
		st: ng.Store(storePrefix),
	}, nil
}

// Put creates or replaces a domain.
func (s *Store) Put(name string, syms []types.Symbol) error {
	if name == "" {
		return errors.New("domain name cannot be empty")
	}

	return s.st.Put([]byte(name), encoding.EncodeSymbols(nil, syms))
}

// Lookup implements the Resolver interface.
func (s *Store) Lookup(name string) ([]types.Symbol, error) {
	v, err := s.st.Get([]byte(name))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, errors.Wrapf(ErrDomainNotFound, "%q", name)
		}
		return nil, err
	}

	syms, err := encoding.DecodeSymbols(v)
	if err != nil {
		return nil, errors.Wrapf(err, "domain %q", name)
	}

	return syms, nil
}

// Delete removes a domain.
func (s *Store) Delete(name string) error {
	err := s.st.Delete([]byte(name))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return errors.Wrapf(ErrDomainNotFound, "%q", name)
	}
	return err
}

// Names returns the names of every domain, sorted.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.st.Iterate(func(k, _ []byte) error {
		names = append(names, string(k))
		return nil
	})
	return names, err
}

// Close the underlying database.
func (s *Store) Close() error {
	return s.ng.Close()
}
