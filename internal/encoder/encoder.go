// Package encoder turns values into JSON.
package encoder

import (
	"fmt"

	"github.com/chaisql/kjson/domain"
	"github.com/chaisql/kjson/internal/jsonw"
	"github.com/chaisql/kjson/internal/metrics"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Selector selects the part of a value to encode: either the whole value
// or a single element of a vector or list, or a single row of a table.
type Selector struct {
	row       int
	projected bool
}

// Whole selects the entire value.
func Whole() Selector {
	return Selector{}
}

// Row selects the element or row i.
func Row(i int) Selector {
	return Selector{row: i, projected: true}
}

// Row returns the selected row and whether a row is selected at all.
func (s Selector) Row() (int, bool) {
	return s.row, s.projected
}

func (s Selector) String() string {
	if !s.projected {
		return "whole"
	}
	return fmt.Sprintf("row %d", s.row)
}

// Options of the encoder.
type Options struct {
	// Domains resolves the symbol domains of enumerations.
	// If nil, enumerations are encoded as null.
	Domains domain.Resolver
	// Logger receives debug messages about values that degrade to null.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

type resolved struct {
	syms []types.Symbol
	ok   bool
}

// Encoder writes values to a JSON writer.
// Symbol domains are resolved at most once per encoder, hence an encoder
// must not outlive the encoding call it was created for.
type Encoder struct {
	w       *jsonw.Writer
	opts    Options
	domains map[string]resolved
}

// New creates an encoder writing to w.
func New(w *jsonw.Writer, opts Options) *Encoder {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Encoder{
		w:       w,
		opts:    opts,
		domains: make(map[string]resolved),
	}
}

// Encode writes the selected part of v to w.
func Encode(w *jsonw.Writer, v types.Value, sel Selector, opts Options) {
	New(w, opts).Encode(v, sel)
}

// Encode writes the selected part of v.
// It panics if v breaks an invariant of the value model, like a keyed table
// whose key and value tables don't have the same number of rows.
func (e *Encoder) Encode(v types.Value, sel Selector) {
	switch v := v.(type) {
	case types.List:
		e.list(v, sel)
	case types.Dict:
		e.dict(v)
	case types.Table:
		e.table(v, sel)
	case types.EnumAtom:
		e.enumAtom(v)
	case types.EnumVector:
		e.enumVector(v, sel)
	case types.Vector[types.Char]:
		e.chars(v, sel)
	case types.AtomValue:
		e.scalar(v.Elem())
	case types.VectorValue:
		e.vector(v, sel)
	default:
		e.unknown(v)
	}
}

func (e *Encoder) vector(v types.VectorValue, sel Selector) {
	if i, ok := sel.Row(); ok {
		e.scalar(v.Index(i))
		return
	}

	e.w.StartArray()
	for i := 0; i < v.Len(); i++ {
		e.scalar(v.Index(i))
	}
	e.w.EndArray()
}

// a whole char vector is a single string.
func (e *Encoder) chars(v types.Vector[types.Char], sel Selector) {
	if i, ok := sel.Row(); ok {
		e.char(v.Elems[i])
		return
	}

	b := make([]byte, len(v.Elems))
	for i, c := range v.Elems {
		b[i] = byte(c)
	}
	e.w.StringBytes(b)
}

func (e *Encoder) list(l types.List, sel Selector) {
	if i, ok := sel.Row(); ok {
		e.Encode(l.Elems[i], Whole())
		return
	}

	e.w.StartArray()
	for _, v := range l.Elems {
		e.Encode(v, Whole())
	}
	e.w.EndArray()
}

func (e *Encoder) dict(d types.Dict) {
	kt, kok := d.Keys.(types.Table)
	vt, vok := d.Values.(types.Table)
	if kok && vok {
		e.keyedTable(kt, vt)
		return
	}

	e.w.StartObject()
	for i := 0; i < d.Keys.Len(); i++ {
		e.key(d.Keys, i)
		e.Encode(d.Values, Row(i))
	}
	e.w.EndObject()
}

// key writes the i-th key of a dictionary as a member name.
// Scalars are turned into member names by the writer, other values
// are replaced by their JSON text.
func (e *Encoder) key(keys types.Value, i int) {
	switch k := keys.(type) {
	case types.List:
		elem := k.Elems[i]
		if _, ok := elem.(types.Vector[types.Char]); ok || types.IsAtom(elem) {
			e.Encode(elem, Whole())
			return
		}
		e.w.Key(e.text(elem, Whole()))
	case types.Table:
		e.w.Key(e.text(k, Row(i)))
	default:
		e.Encode(keys, Row(i))
	}
}

// text returns the JSON text of v.
func (e *Encoder) text(v types.Value, sel Selector) string {
	sub := Encoder{
		w:       jsonw.New(e.w.MaxDecimalPlaces()),
		opts:    e.opts,
		domains: e.domains,
	}
	sub.Encode(v, sel)
	return string(sub.w.Bytes())
}

func (e *Encoder) table(t types.Table, sel Selector) {
	if i, ok := sel.Row(); ok {
		e.w.StartObject()
		e.columns(t, i)
		e.w.EndObject()
		return
	}

	rows := t.Len()
	e.w.StartArray()
	for i := 0; i < rows; i++ {
		e.w.StartObject()
		e.columns(t, i)
		e.w.EndObject()
	}
	e.w.EndArray()
}

// columns writes the members of row i, without the enclosing object.
func (e *Encoder) columns(t types.Table, i int) {
	for c, name := range t.Columns {
		e.symbol(name)
		e.Encode(t.Data[c], Row(i))
	}
}

// keyedTable writes one object per row, made of the key columns followed by the value columns.
func (e *Encoder) keyedTable(keys, values types.Table) {
	rows := keys.Len()
	if values.Len() != rows {
		panic(errors.AssertionFailedf("keyed table has %d key rows and %d value rows", rows, values.Len()))
	}

	e.w.StartArray()
	for i := 0; i < rows; i++ {
		e.w.StartObject()
		e.columns(keys, i)
		e.columns(values, i)
		e.w.EndObject()
	}
	e.w.EndArray()
}

func (e *Encoder) unknown(v any) {
	metrics.UnknownKinds.Inc()
	e.opts.Logger.Debug("encoding unsupported value as null", zap.String("type", fmt.Sprintf("%T", v)))
	e.w.Null()
}
