package types

import (
	"github.com/cockroachdb/errors"
)

// Dict maps keys to values. Keys and Values are vectors, lists or tables
// of the same length. A dictionary whose keys and values are both tables
// is a keyed table.
type Dict struct {
	Keys   Value
	Values Value
}

// NewDict pairs keys with values.
func NewDict(keys, values Value) (Dict, error) {
	if !isCollection(keys) {
		return Dict{}, errors.Wrap(ErrNotAList, "invalid dictionary keys")
	}
	if !isCollection(values) {
		return Dict{}, errors.Wrap(ErrNotAList, "invalid dictionary values")
	}

	if keys.Len() != values.Len() {
		return Dict{}, errors.Wrapf(ErrLengthMismatch, "dictionary has %d keys and %d values", keys.Len(), values.Len())
	}

	return Dict{Keys: keys, Values: values}, nil
}

// NewKeyedTable returns a table keyed by the columns of keys.
// Both tables must have the same number of rows.
func NewKeyedTable(keys, values Table) (Dict, error) {
	if keys.Len() != values.Len() {
		return Dict{}, errors.Wrapf(ErrLengthMismatch, "key table has %d rows and value table has %d rows", keys.Len(), values.Len())
	}

	return Dict{Keys: keys, Values: values}, nil
}

func (Dict) Kind() Kind {
	return KindDict
}

func (d Dict) Len() int {
	return d.Keys.Len()
}

func (d Dict) String() string {
	return formatDict(d)
}

func (Dict) value() {}

func isCollection(v Value) bool {
	if v == nil {
		return false
	}

	switch v.(type) {
	case List, Table:
		return true
	}

	return IsVector(v)
}
