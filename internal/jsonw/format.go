package jsonw

import (
	"math"
	"strconv"
)

const hexDigits = "0123456789abcdef"

// AppendString appends s to dst as a quoted JSON string.
// Bytes are copied as is, except for quotes, backslashes and control characters.
func AppendString[S ~string | ~[]byte](dst []byte, s S) []byte {
	dst = append(dst, '"')

	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}

		dst = append(dst, s[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)

	return append(dst, '"')
}

// AppendDouble appends the shortest decimal representation of the finite number f,
// truncated to maxDecimalPlaces fractional digits. Trailing zeros left by the
// truncation are removed but at least one fractional digit is kept, so that
// the output always reads as a floating-point number: 1.25 -> "1.25", 2 -> "2.0",
// 0.000001 -> "0.0" with 5 decimal places. Very large or very small magnitudes
// use the exponent notation: 1e30 -> "1e30".
func AppendDouble(dst []byte, f float64, maxDecimalPlaces int) []byte {
	if math.Signbit(f) {
		dst = append(dst, '-')
		f = -f
	}
	if f == 0 {
		return append(dst, "0.0"...)
	}

	// shortest digits and decimal exponent: f = 0.d1d2...dn * 10^kk
	var scratch [32]byte
	e := strconv.AppendFloat(scratch[:0], f, 'e', -1, 64)
	var digits []byte
	var exp int
	for i, c := range e {
		if c == 'e' {
			exp, _ = strconv.Atoi(string(e[i+1:]))
			break
		}
		if c != '.' {
			digits = append(digits, c)
		}
	}

	length := len(digits)
	kk := exp + 1
	k := kk - length

	switch {
	case k >= 0 && kk <= 21:
		// 1234e7 -> 12340000000.0
		dst = append(dst, digits...)
		for i := length; i < kk; i++ {
			dst = append(dst, '0')
		}
		return append(dst, '.', '0')
	case kk > 0 && kk <= 21:
		// 1234e-2 -> 12.34
		dst = append(dst, digits[:kk]...)
		dst = append(dst, '.')
		frac := digits[kk:]
		if len(frac) > maxDecimalPlaces {
			frac = trimZeros(frac[:maxDecimalPlaces])
		}
		return append(dst, frac...)
	case kk > -6 && kk <= 0:
		// 1234e-6 -> 0.001234
		frac := make([]byte, 0, -kk+length)
		for i := kk; i < 0; i++ {
			frac = append(frac, '0')
		}
		frac = append(frac, digits...)
		if len(frac) > maxDecimalPlaces {
			frac = trimZeros(frac[:maxDecimalPlaces])
		}
		dst = append(dst, '0', '.')
		return append(dst, frac...)
	case kk < -maxDecimalPlaces:
		return append(dst, "0.0"...)
	case length == 1:
		// 1e30
		dst = append(dst, digits[0], 'e')
		return strconv.AppendInt(dst, int64(kk-1), 10)
	default:
		// 1234e30 -> 1.234e33
		dst = append(dst, digits[0], '.')
		dst = append(dst, digits[1:]...)
		dst = append(dst, 'e')
		return strconv.AppendInt(dst, int64(kk-1), 10)
	}
}

// trimZeros removes trailing zeros, keeping at least one digit.
func trimZeros(frac []byte) []byte {
	i := len(frac)
	for i > 1 && frac[i-1] == '0' {
		i--
	}
	return frac[:i]
}
