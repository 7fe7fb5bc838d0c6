// Package jsonw implements a streaming JSON writer driven by events.
package jsonw

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// DefaultMaxDecimalPlaces is the number of fractional digits kept by Double
// unless configured otherwise.
const DefaultMaxDecimalPlaces = 5

type level struct {
	object bool
	// number of values written in the container.
	// in objects, member names are counted as values.
	count int
}

// Writer appends JSON text to an internal buffer, one event at a time.
// Inside objects, scalar events written where a member name is expected
// are turned into member names.
type Writer struct {
	buf              []byte
	stack            []level
	maxDecimalPlaces int
}

// New creates a writer. Doubles are truncated to maxDecimalPlaces fractional digits.
func New(maxDecimalPlaces int) *Writer {
	if maxDecimalPlaces <= 0 {
		maxDecimalPlaces = DefaultMaxDecimalPlaces
	}

	return &Writer{
		maxDecimalPlaces: maxDecimalPlaces,
	}
}

// MaxDecimalPlaces returns the number of fractional digits kept by Double.
func (w *Writer) MaxDecimalPlaces() int {
	return w.maxDecimalPlaces
}

// Bytes returns the JSON written so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reset clears the writer.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.stack = w.stack[:0]
}

// IsComplete reports whether a full top-level value has been written.
func (w *Writer) IsComplete() bool {
	return len(w.stack) == 0 && len(w.buf) > 0
}

// IsKey reports whether the next event is a member name.
func (w *Writer) IsKey() bool {
	if len(w.stack) == 0 {
		return false
	}
	top := w.stack[len(w.stack)-1]
	return top.object && top.count%2 == 0
}

func (w *Writer) prefix() {
	if len(w.stack) == 0 {
		return
	}

	top := &w.stack[len(w.stack)-1]
	if top.count > 0 {
		if top.object && top.count%2 == 1 {
			w.buf = append(w.buf, ':')
		} else {
			w.buf = append(w.buf, ',')
		}
	}
	top.count++
}

// StartArray opens an array.
func (w *Writer) StartArray() {
	w.mustNotBeKey("array")
	w.prefix()
	w.stack = append(w.stack, level{})
	w.buf = append(w.buf, '[')
}

// EndArray closes the current array.
func (w *Writer) EndArray() {
	if len(w.stack) == 0 || w.stack[len(w.stack)-1].object {
		panic(errors.AssertionFailedf("EndArray called outside of an array"))
	}
	w.stack = w.stack[:len(w.stack)-1]
	w.buf = append(w.buf, ']')
}

// StartObject opens an object.
func (w *Writer) StartObject() {
	w.mustNotBeKey("object")
	w.prefix()
	w.stack = append(w.stack, level{object: true})
	w.buf = append(w.buf, '{')
}

// EndObject closes the current object.
func (w *Writer) EndObject() {
	if len(w.stack) == 0 || !w.stack[len(w.stack)-1].object {
		panic(errors.AssertionFailedf("EndObject called outside of an object"))
	}
	if w.stack[len(w.stack)-1].count%2 != 0 {
		panic(errors.AssertionFailedf("object member name without value"))
	}
	w.stack = w.stack[:len(w.stack)-1]
	w.buf = append(w.buf, '}')
}

func (w *Writer) mustNotBeKey(what string) {
	if w.IsKey() {
		panic(errors.AssertionFailedf("%s used as an object member name", what))
	}
}

// Key writes a member name.
func (w *Writer) Key(s string) {
	if !w.IsKey() {
		panic(errors.AssertionFailedf("member name %q written outside of a member name position", s))
	}
	w.String(s)
}

// Null writes null.
func (w *Writer) Null() {
	if w.IsKey() {
		w.String("null")
		return
	}
	w.prefix()
	w.buf = append(w.buf, "null"...)
}

// Bool writes true or false.
func (w *Writer) Bool(b bool) {
	if w.IsKey() {
		w.String(strconv.FormatBool(b))
		return
	}
	w.prefix()
	w.buf = strconv.AppendBool(w.buf, b)
}

// Int64 writes an integer.
func (w *Writer) Int64(n int64) {
	if w.IsKey() {
		w.String(strconv.FormatInt(n, 10))
		return
	}
	w.prefix()
	w.buf = strconv.AppendInt(w.buf, n, 10)
}

// Double writes a finite floating-point number.
func (w *Writer) Double(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(errors.AssertionFailedf("cannot write %v as a JSON number", f))
	}

	if w.IsKey() {
		w.String(string(AppendDouble(nil, f, w.maxDecimalPlaces)))
		return
	}
	w.prefix()
	w.buf = AppendDouble(w.buf, f, w.maxDecimalPlaces)
}

// String writes a string.
func (w *Writer) String(s string) {
	w.prefix()
	w.buf = AppendString(w.buf, s)
}

// StringBytes writes b as a string.
func (w *Writer) StringBytes(b []byte) {
	w.prefix()
	w.buf = AppendString(w.buf, b)
}
