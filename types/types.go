// Package types implements the typed value model exchanged with JSON.
//
// A value is either an atom (a single scalar), a vector (an ordered,
// homogeneous sequence of scalars of the same kind), a general list,
// a dictionary or a table. Kinds and their numbering follow the kdb+
// type system.
package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrLengthMismatch is returned when building a dictionary or a table
	// whose parts don't have the same length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNotAList is returned when a value cannot be used as keys or values
	// of a dictionary.
	ErrNotAList = errors.New("value is not a vector or a list")
)

// Kind represents the kind of a value.
type Kind int8

// List of supported kinds.
const (
	KindList      Kind = 0
	KindBoolean   Kind = 1
	KindGUID      Kind = 2
	KindByte      Kind = 4
	KindShort     Kind = 5
	KindInt       Kind = 6
	KindLong      Kind = 7
	KindReal      Kind = 8
	KindFloat     Kind = 9
	KindChar      Kind = 10
	KindSymbol    Kind = 11
	KindTimestamp Kind = 12
	KindMonth     Kind = 13
	KindDate      Kind = 14
	KindDatetime  Kind = 15
	KindTimespan  Kind = 16
	KindMinute    Kind = 17
	KindSecond    Kind = 18
	KindTime      Kind = 19
	KindEnum      Kind = 20
	KindTable     Kind = 98
	KindDict      Kind = 99
)

// Kinds lists every kind of the value model.
var Kinds = []Kind{
	KindList, KindBoolean, KindGUID, KindByte, KindShort, KindInt, KindLong,
	KindReal, KindFloat, KindChar, KindSymbol, KindTimestamp, KindMonth,
	KindDate, KindDatetime, KindTimespan, KindMinute, KindSecond, KindTime,
	KindEnum, KindTable, KindDict,
}

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindBoolean:
		return "boolean"
	case KindGUID:
		return "guid"
	case KindByte:
		return "byte"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindReal:
		return "real"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindSymbol:
		return "symbol"
	case KindTimestamp:
		return "timestamp"
	case KindMonth:
		return "month"
	case KindDate:
		return "date"
	case KindDatetime:
		return "datetime"
	case KindTimespan:
		return "timespan"
	case KindMinute:
		return "minute"
	case KindSecond:
		return "second"
	case KindTime:
		return "time"
	case KindEnum:
		return "enum"
	case KindTable:
		return "table"
	case KindDict:
		return "dict"
	}

	return fmt.Sprintf("kind(%d)", int8(k))
}

// IsTemporal returns true if k is one of the date and time kinds.
func (k Kind) IsTemporal() bool {
	switch k {
	case KindTimestamp, KindMonth, KindDate, KindDatetime, KindTimespan, KindMinute, KindSecond, KindTime:
		return true
	}
	return false
}

// IsPrimitive returns true if values of kind k come as atoms or vectors.
func (k Kind) IsPrimitive() bool {
	return k >= KindBoolean && k <= KindEnum && k != 3
}

// Value is implemented by every type of this package and only by them.
type Value interface {
	// Kind of the value.
	Kind() Kind
	// Len returns the number of elements of a vector or a list,
	// the number of entries of a dictionary or the number of rows of a table.
	// Atoms have a length of 1.
	Len() int
	// String returns the q display text of the value.
	String() string

	value()
}

// IsAtom returns whether v holds a single scalar.
func IsAtom(v Value) bool {
	_, ok := v.(AtomValue)
	return ok
}

// IsVector returns whether v is a homogeneous vector.
func IsVector(v Value) bool {
	_, ok := v.(VectorValue)
	return ok
}

// IsTable returns whether v is a table.
func IsTable(v Value) bool {
	_, ok := v.(Table)
	return ok
}

// IsKeyedTable returns whether v is a dictionary whose keys and values are both tables.
func IsKeyedTable(v Value) bool {
	d, ok := v.(Dict)
	return ok && IsTable(d.Keys) && IsTable(d.Values)
}
