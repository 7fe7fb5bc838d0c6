// Package domain resolves named symbol domains, the lists of symbols
// enumerated values are indexes into.
package domain

import (
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
)

// ErrDomainNotFound is returned when a domain doesn't exist.
var ErrDomainNotFound = errors.New("symbol domain not found")

// A Resolver returns the symbols of a named domain.
// If the domain doesn't exist, it must return ErrDomainNotFound.
type Resolver interface {
	Lookup(name string) ([]types.Symbol, error)
}

// Map is an in-memory Resolver.
type Map map[string][]types.Symbol

// Lookup implements the Resolver interface.
func (m Map) Lookup(name string) ([]types.Symbol, error) {
	syms, ok := m[name]
	if !ok {
		return nil, errors.Wrapf(ErrDomainNotFound, "%q", name)
	}

	return syms, nil
}
