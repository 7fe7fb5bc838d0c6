package kjson

import (
	"fmt"

	"github.com/chaisql/kjson/internal/decoder"
	"github.com/chaisql/kjson/internal/encoder"
	"github.com/chaisql/kjson/internal/jsonw"
	"github.com/chaisql/kjson/internal/metrics"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Marshal returns the JSON encoding of v.
func Marshal(v types.Value, opts ...Option) ([]byte, error) {
	return marshal(v, encoder.Whole(), opts)
}

// MarshalRow returns the JSON encoding of the element i of a vector or a list,
// or of the row i of a table. Atoms are encoded whole.
func MarshalRow(v types.Value, i int, opts ...Option) ([]byte, error) {
	var err error
	switch {
	case v == nil:
		err = errors.Wrap(ErrInputType, "cannot select a row of nil")
	case v.Kind() == types.KindDict:
		err = errors.Wrap(ErrInputType, "cannot select a row of a dictionary")
	case i < 0 || (!types.IsAtom(v) && i >= v.Len()):
		err = errors.Wrapf(ErrInputType, "row %d out of range [0, %d)", i, v.Len())
	}
	if err != nil {
		metrics.EncodeErrors.Inc()
		return nil, err
	}

	return marshal(v, encoder.Row(i), opts)
}

func marshal(v types.Value, sel encoder.Selector, opts []Option) (data []byte, err error) {
	o := newOptions(opts)

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		data = nil
		if rerr, ok := r.(error); ok {
			err = errors.Mark(errors.WithStack(rerr), ErrEncode)
		} else {
			err = errors.Wrapf(ErrEncode, "%v", r)
		}
		metrics.EncodeErrors.Inc()
		o.logger.Debug("encoding failed", zap.Error(err), zap.Stringer("selector", sel))
	}()

	w := jsonw.New(o.maxDecimalPlaces)
	encoder.Encode(w, v, sel, encoder.Options{
		Domains: o.domains,
		Logger:  o.logger,
	})

	return w.Bytes(), nil
}

// Unmarshal parses JSON and returns the value it represents.
// Malformed input is reported with a *ParseError.
func Unmarshal(data []byte) (types.Value, error) {
	v, err := decoder.Decode(data)
	if err != nil {
		metrics.DecodeErrors.Inc()
		return nil, err
	}

	return v, nil
}

// UnmarshalValue parses the JSON text held by a char vector.
func UnmarshalValue(v types.Value) (types.Value, error) {
	s, ok := v.(types.Vector[types.Char])
	if !ok {
		metrics.DecodeErrors.Inc()
		return nil, errors.Wrapf(ErrInputType, "expected a char vector, got %s", kindOf(v))
	}

	b := make([]byte, len(s.Elems))
	for i, c := range s.Elems {
		b[i] = byte(c)
	}

	return Unmarshal(b)
}

func kindOf(v types.Value) string {
	if v == nil {
		return "nil"
	}
	if types.IsAtom(v) {
		return fmt.Sprintf("%s atom", v.Kind())
	}
	if types.IsVector(v) {
		return fmt.Sprintf("%s vector", v.Kind())
	}
	return v.Kind().String()
}
