package kjson

import (
	"github.com/chaisql/kjson/internal/decoder"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInputType is returned when the input of a conversion has the wrong type.
	ErrInputType = errors.New("invalid input type")

	// ErrParse is matched by every ParseError.
	ErrParse = decoder.ErrParse

	// ErrConversion is returned when a part of a JSON document cannot be converted.
	// The error message names the failing member or element.
	// Numbers outside of the float64 range, like 1e400, are reported with it.
	ErrConversion = decoder.ErrConversion

	// ErrEncode is returned when a value cannot be encoded because it breaks
	// an invariant of the value model.
	ErrEncode = errors.New("encoding failed")
)

// ParseError is returned by Unmarshal when the input is not valid JSON.
// It carries the parser message and the offset of the faulty byte.
type ParseError = decoder.ParseError
