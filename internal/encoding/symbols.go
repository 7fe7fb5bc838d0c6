// Package encoding implements the binary format of symbol domains.
package encoding

import (
	"encoding/binary"

	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
)

// ErrCorrupted is returned when decoding a malformed buffer.
var ErrCorrupted = errors.New("corrupted symbol list")

// EncodeText appends x, prefixed by its length encoded as a varint.
func EncodeText(dst []byte, x string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(x)))
	return append(dst, x...)
}

// DecodeText decodes a text encoded by EncodeText and returns the number of bytes read.
func DecodeText(b []byte) (string, int, error) {
	l, n := binary.Uvarint(b)
	if n <= 0 || uint64(len(b)-n) < l {
		return "", 0, errors.WithStack(ErrCorrupted)
	}

	return string(b[n : n+int(l)]), n + int(l), nil
}

// EncodeSymbols appends the number of symbols followed by every symbol.
func EncodeSymbols(dst []byte, syms []types.Symbol) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(syms)))
	for _, s := range syms {
		dst = EncodeText(dst, string(s))
	}
	return dst
}

// DecodeSymbols decodes a list encoded by EncodeSymbols.
func DecodeSymbols(b []byte) ([]types.Symbol, error) {
	count, n := binary.Uvarint(b)
	if n <= 0 || count > uint64(len(b)) {
		return nil, errors.WithStack(ErrCorrupted)
	}
	b = b[n:]

	syms := make([]types.Symbol, 0, count)
	for i := uint64(0); i < count; i++ {
		s, n, err := DecodeText(b)
		if err != nil {
			return nil, errors.Wrapf(err, "symbol %d", i)
		}
		syms = append(syms, types.Symbol(s))
		b = b[n:]
	}

	if len(b) != 0 {
		return nil, errors.Wrapf(ErrCorrupted, "%d trailing bytes", len(b))
	}

	return syms, nil
}
