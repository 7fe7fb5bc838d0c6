package types

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// type characters of the q language, used as display suffixes.
var suffixes = map[Kind]string{
	KindBoolean:   "b",
	KindGUID:      "g",
	KindShort:     "h",
	KindInt:       "i",
	KindLong:      "j",
	KindReal:      "e",
	KindFloat:     "f",
	KindTimestamp: "p",
	KindMonth:     "m",
	KindDate:      "d",
	KindDatetime:  "z",
	KindTimespan:  "n",
	KindMinute:    "u",
	KindSecond:    "v",
	KindTime:      "t",
}

// typed reports whether the suffix is always displayed.
func typed(k Kind) bool {
	switch k {
	case KindShort, KindInt, KindReal, KindFloat, KindMonth:
		return true
	}
	return false
}

// scalarBody returns the display text of x without its type suffix.
// special is true for nulls and infinities.
func scalarBody(x any) (body string, special bool) {
	switch x := x.(type) {
	case Boolean:
		if x {
			return "1", false
		}
		return "0", false
	case Byte:
		return hex.EncodeToString([]byte{byte(x)}), false
	case Char:
		return string([]byte{byte(x)}), false
	case Symbol:
		return string(x), false
	case GUID:
		return x.String(), false
	case Short:
		return intBody(int64(x), x.IsNull(), x.IsInf())
	case Int:
		return intBody(int64(x), x.IsNull(), x.IsInf())
	case Long:
		return intBody(int64(x), x.IsNull(), x.IsInf())
	case Real:
		return floatBody(float64(x), 32)
	case Float:
		return floatBody(float64(x), 64)
	case Timestamp:
		if x.IsNull() || x.IsInf() {
			return intBody(int64(x), x.IsNull(), x.IsInf())
		}
		return x.Time().Format("2006.01.02D15:04:05.000000000"), false
	case Month:
		if x.IsNull() || x.IsInf() {
			return intBody(int64(x), x.IsNull(), x.IsInf())
		}
		return x.Time().Format("2006.01"), false
	case Date:
		if x.IsNull() || x.IsInf() {
			return intBody(int64(x), x.IsNull(), x.IsInf())
		}
		return x.Time().Format("2006.01.02"), false
	case Datetime:
		if x.IsNull() || x.IsInf() {
			return floatBody(float64(x), 64)
		}
		return x.Time().Format("2006.01.02T15:04:05.000"), false
	case Timespan:
		if x.IsNull() || x.IsInf() {
			return intBody(int64(x), x.IsNull(), x.IsInf())
		}
		return x.Text(), false
	case Minute:
		if x.IsNull() || x.IsInf() {
			return intBody(int64(x), x.IsNull(), x.IsInf())
		}
		return x.Text(), false
	case Second:
		if x.IsNull() || x.IsInf() {
			return intBody(int64(x), x.IsNull(), x.IsInf())
		}
		return x.Text(), false
	case Time:
		if x.IsNull() || x.IsInf() {
			return intBody(int64(x), x.IsNull(), x.IsInf())
		}
		return x.Text(), false
	}

	return fmt.Sprint(x), false
}

func intBody(x int64, null, inf bool) (string, bool) {
	switch {
	case null:
		return "0N", true
	case inf && x < 0:
		return "-0W", true
	case inf:
		return "0W", true
	}
	return strconv.FormatInt(x, 10), false
}

func floatBody(x float64, bitSize int) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "0N", true
	case math.IsInf(x, -1):
		return "-0W", true
	case math.IsInf(x, 1):
		return "0W", true
	}
	return strconv.FormatFloat(x, 'g', -1, bitSize), false
}

func formatScalar(x interface{ Kind() Kind }, atom bool) string {
	body, special := scalarBody(x)
	k := x.Kind()

	switch k {
	case KindBoolean:
		return body + "b"
	case KindByte:
		return "0x" + body
	case KindChar:
		return strconv.Quote(body)
	case KindSymbol:
		return "`" + body
	}

	if special || (atom && typed(k)) {
		return body + suffixes[k]
	}
	return body
}

func formatVector(v VectorValue) string {
	n := v.Len()
	k := v.Kind()
	if n == 0 {
		return "`" + k.String() + "$()"
	}

	var sb strings.Builder
	if n == 1 {
		sb.WriteByte(',')
	}

	switch k {
	case KindChar:
		b := make([]byte, n)
		for i := 0; i < n; i++ {
			b[i] = byte(v.Index(i).(Char))
		}
		sb.WriteString(strconv.Quote(string(b)))
		return sb.String()
	case KindBoolean:
		for i := 0; i < n; i++ {
			body, _ := scalarBody(v.Index(i))
			sb.WriteString(body)
		}
		sb.WriteByte('b')
		return sb.String()
	case KindByte:
		sb.WriteString("0x")
		for i := 0; i < n; i++ {
			body, _ := scalarBody(v.Index(i))
			sb.WriteString(body)
		}
		return sb.String()
	case KindSymbol:
		for i := 0; i < n; i++ {
			body, _ := scalarBody(v.Index(i))
			sb.WriteByte('`')
			sb.WriteString(body)
		}
		return sb.String()
	}

	allSpecial := true
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		body, special := scalarBody(v.Index(i))
		allSpecial = allSpecial && special
		sb.WriteString(body)
	}
	if typed(k) || allSpecial {
		sb.WriteString(suffixes[k])
	}

	return sb.String()
}

func formatEnumIndex(x Enum) string {
	body, _ := intBody(int64(x), x.IsNull(), x == InfEnum || x == -InfEnum)
	return body
}

func formatEnumVector(e EnumVector) string {
	if len(e.Indices) == 0 {
		return "`" + e.DomainName() + "$()"
	}

	var sb strings.Builder
	sb.WriteByte('`')
	sb.WriteString(e.DomainName())
	sb.WriteByte('$')
	if len(e.Indices) == 1 {
		sb.WriteByte(',')
	}
	for i, x := range e.Indices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatEnumIndex(x))
	}
	return sb.String()
}

func formatList(l List) string {
	switch len(l.Elems) {
	case 0:
		return "()"
	case 1:
		return "enlist " + l.Elems[0].String()
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range l.Elems {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func formatDict(d Dict) string {
	if IsTable(d.Keys) {
		return "(" + d.Keys.String() + ")!" + d.Values.String()
	}
	return d.Keys.String() + "!" + d.Values.String()
}
