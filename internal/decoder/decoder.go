// Package decoder turns JSON into values.
//
// Numbers become floats, strings become char vectors and null becomes
// the generic null. Arrays of atoms of the same kind are collapsed into
// vectors and objects become dictionaries keyed by symbols.
package decoder

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
)

var (
	// ErrParse is matched by every ParseError.
	ErrParse = errors.New("malformed JSON")

	// ErrConversion is returned when a JSON value cannot be turned into a value.
	// Numbers outside of the float64 range, like 1e400, are reported with it.
	ErrConversion = errors.New("conversion failed")
)

// ParseError is returned when the input is not valid JSON.
type ParseError struct {
	Msg string
	// Offset of the input byte where the error was detected.
	Offset int64
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// Is makes errors.Is(err, ErrParse) true for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Decode parses data and returns the value it represents.
// No value is returned if any part of data fails to convert.
func Decode(data []byte) (types.Value, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(ErrConversion, err.Error())
	}

	return decodeValue(dataType, value)
}

func validate(data []byte) error {
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err == nil {
		return nil
	}

	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		return &ParseError{Msg: serr.Error(), Offset: serr.Offset}
	}

	return &ParseError{Msg: err.Error(), Offset: int64(len(data))}
}

func decodeValue(dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.Null(), nil
	case jsonparser.Boolean:
		b, err := parseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewAtom(b), nil
	case jsonparser.Number:
		f, err := parseNumber(data)
		if err != nil {
			return nil, err
		}
		return types.NewAtom(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, errors.Wrapf(ErrConversion, "invalid string %q", data)
		}
		return types.NewString(s), nil
	case jsonparser.Array:
		return decodeArray(data)
	case jsonparser.Object:
		return decodeObject(data)
	default:
		return nil, errors.Wrapf(ErrConversion, "unsupported JSON type: %v", dataType)
	}
}

func parseNumber(data []byte) (types.Float, error) {
	f, err := jsonparser.ParseFloat(data)
	if err != nil {
		return 0, errors.Wrapf(ErrConversion, "invalid number %s", data)
	}
	return types.Float(f), nil
}

func parseBoolean(data []byte) (types.Boolean, error) {
	b, err := jsonparser.ParseBoolean(data)
	if err != nil {
		return false, errors.Wrapf(ErrConversion, "invalid boolean %q", data)
	}
	return types.Boolean(b), nil
}

func decodeArray(data []byte) (types.Value, error) {
	var elems []types.Value
	var failure error

	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if failure != nil {
			return
		}

		v, err := decodeValue(dataType, value)
		if err != nil {
			failure = errors.Wrapf(err, "index %d", len(elems))
			return
		}
		elems = append(elems, v)
	})
	if failure != nil {
		return nil, failure
	}
	if err != nil {
		return nil, errors.Wrap(ErrConversion, err.Error())
	}

	if len(elems) == 0 {
		return types.NewList(), nil
	}

	return types.Collapse(types.NewList(elems...)), nil
}

type member struct {
	key      types.Symbol
	value    []byte
	dataType jsonparser.ValueType
}

func decodeObject(data []byte) (types.Value, error) {
	var members []member

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		members = append(members, member{key: types.Symbol(key), value: value, dataType: dataType})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrConversion, err.Error())
	}

	keys := make([]types.Symbol, len(members))
	for i, m := range members {
		keys[i] = m.key
	}

	values, err := decodeMembers(members)
	if err != nil {
		return nil, err
	}

	return types.Dict{Keys: types.NewVector(keys...), Values: values}, nil
}

// decodeMembers returns a float vector if every member is a number,
// a boolean vector if every member is a boolean, and a list otherwise.
func decodeMembers(members []member) (types.Value, error) {
	switch homogeneous(members) {
	case jsonparser.Number:
		fs := make([]types.Float, len(members))
		for i, m := range members {
			f, err := parseNumber(m.value)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", m.key)
			}
			fs[i] = f
		}
		return types.NewVector(fs...), nil
	case jsonparser.Boolean:
		bs := make([]types.Boolean, len(members))
		for i, m := range members {
			b, err := parseBoolean(m.value)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", m.key)
			}
			bs[i] = b
		}
		return types.NewVector(bs...), nil
	}

	vs := make([]types.Value, len(members))
	for i, m := range members {
		v, err := decodeValue(m.dataType, m.value)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", m.key)
		}
		vs[i] = v
	}
	return types.NewList(vs...), nil
}

// homogeneous returns the JSON type shared by every member, if it is
// a number or a boolean. An empty object is considered numeric.
func homogeneous(members []member) jsonparser.ValueType {
	t := jsonparser.Number
	for i, m := range members {
		if i == 0 {
			t = m.dataType
		}
		if m.dataType != t || (t != jsonparser.Number && t != jsonparser.Boolean) {
			return jsonparser.Unknown
		}
	}
	return t
}
