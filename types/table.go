package types

import (
	"github.com/cockroachdb/errors"
)

// Table is a list of named columns of equal length.
type Table struct {
	Columns []Symbol
	Data    []Value
}

// NewTable returns a table whose i-th column is named columns[i] and holds data[i].
// Columns must be vectors or lists of the same length.
func NewTable(columns []string, data ...Value) (Table, error) {
	if len(columns) != len(data) {
		return Table{}, errors.Wrapf(ErrLengthMismatch, "table has %d column names and %d columns", len(columns), len(data))
	}

	cols := make([]Symbol, len(columns))
	for i, c := range columns {
		cols[i] = Symbol(c)

		if data[i] == nil {
			return Table{}, errors.Wrapf(ErrNotAList, "column %q is nil", c)
		}
		if _, ok := data[i].(List); !ok && !IsVector(data[i]) {
			return Table{}, errors.Wrapf(ErrNotAList, "column %q is a %s", c, data[i].Kind())
		}
		if data[i].Len() != data[0].Len() {
			return Table{}, errors.Wrapf(ErrLengthMismatch, "column %q has %d rows, expected %d", c, data[i].Len(), data[0].Len())
		}
	}

	return Table{Columns: cols, Data: data}, nil
}

func (Table) Kind() Kind {
	return KindTable
}

// Len returns the number of rows, taken from the first column.
func (t Table) Len() int {
	if len(t.Data) == 0 {
		return 0
	}
	return t.Data[0].Len()
}

// Column returns the column named name.
func (t Table) Column(name string) (Value, bool) {
	for i, c := range t.Columns {
		if string(c) == name {
			return t.Data[i], true
		}
	}
	return nil, false
}

// Flip returns the column dictionary of the table.
func (t Table) Flip() Dict {
	return Dict{
		Keys:   Vector[Symbol]{Elems: t.Columns},
		Values: List{Elems: t.Data},
	}
}

func (t Table) String() string {
	return "+" + formatDict(t.Flip())
}

func (Table) value() {}
