package encoder

import (
	"fmt"
	"math"

	"github.com/chaisql/kjson/internal/jsonw"
	"github.com/chaisql/kjson/types"
	"golang.org/x/exp/constraints"
)

const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// scalar writes one element of an atom or a vector.
func (e *Encoder) scalar(x any) {
	switch x := x.(type) {
	case types.Boolean:
		e.w.Bool(bool(x))
	case types.Byte:
		e.w.String(fmt.Sprintf("%02x", uint8(x)))
	case types.Char:
		e.char(x)
	case types.Short:
		integer(e.w, x, types.NullShort, types.InfShort)
	case types.Int:
		integer(e.w, x, types.NullInt, types.InfInt)
	case types.Long:
		integer(e.w, x, types.NullLong, types.InfLong)
	case types.Real:
		float(e.w, float64(x))
	case types.Float:
		float(e.w, float64(x))
	case types.Symbol:
		e.symbol(x)
	case types.GUID:
		if x.IsNull() {
			e.w.Null()
			return
		}
		e.w.String(x.String())
	default:
		if t, ok := x.(temporal); ok {
			e.temporal(t)
			return
		}
		e.unknown(x)
	}
}

func (e *Encoder) char(c types.Char) {
	e.w.StringBytes([]byte{byte(c)})
}

func (e *Encoder) symbol(s types.Symbol) {
	if s.IsNull() {
		e.w.Null()
		return
	}
	e.w.String(string(s))
}

// integer writes x, or null if x is the null sentinel or the positive infinity of its kind.
func integer[T constraints.Signed](w *jsonw.Writer, x, null, inf T) {
	if x == null || x == inf {
		w.Null()
		return
	}
	w.Int64(int64(x))
}

// float writes NaN as null, infinities as strings and integral values as integers.
func float(w *jsonw.Writer, f float64) {
	switch {
	case math.IsNaN(f):
		w.Null()
	case math.IsInf(f, 1):
		w.String("Inf")
	case math.IsInf(f, -1):
		w.String("-Inf")
	case f == math.Trunc(f) && f >= minInt64Float && f < maxInt64Float:
		w.Int64(int64(f))
	default:
		w.Double(f)
	}
}

type temporal interface {
	IsNull() bool
	IsInf() bool
}

// temporal writes a date or a time as a string.
// Null and infinite values are written as null.
func (e *Encoder) temporal(t temporal) {
	if t.IsNull() || t.IsInf() {
		e.w.Null()
		return
	}

	switch t := t.(type) {
	case types.Date:
		e.w.String(t.Time().Format("2006-01-02"))
	case types.Month:
		e.w.String(t.Time().Format("2006-01"))
	case types.Datetime:
		e.w.String(t.Time().Format("2006-01-02T15:04:05.000"))
	case types.Timestamp:
		e.w.String(t.Time().Format("2006-01-02T15:04:05.000000000"))
	case types.Timespan:
		e.w.String(t.Text())
	case types.Time:
		e.w.String(t.Text())
	case types.Second:
		e.w.String(t.Text())
	case types.Minute:
		e.w.String(t.Text())
	default:
		e.unknown(t)
	}
}
