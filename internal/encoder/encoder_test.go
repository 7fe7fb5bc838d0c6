package encoder_test

import (
	"math"
	"testing"

	"github.com/chaisql/kjson/domain"
	"github.com/chaisql/kjson/internal/encoder"
	"github.com/chaisql/kjson/internal/jsonw"
	"github.com/chaisql/kjson/internal/metrics"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
	prometheustest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func encode(t testing.TB, v types.Value, sel encoder.Selector, opts encoder.Options) string {
	t.Helper()

	w := jsonw.New(0)
	encoder.Encode(w, v, sel, opts)
	require.True(t, w.IsComplete())
	return string(w.Bytes())
}

func mustTable(t testing.TB, columns []string, data ...types.Value) types.Table {
	t.Helper()

	tb, err := types.NewTable(columns, data...)
	require.NoError(t, err)
	return tb
}

func mustDict(t testing.TB, keys, values types.Value) types.Dict {
	t.Helper()

	d, err := types.NewDict(keys, values)
	require.NoError(t, err)
	return d
}

func TestEncodeScalars(t *testing.T) {
	guid := types.GUID{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"boolean", types.NewAtom(types.Boolean(true)), `true`},
		{"byte", types.NewAtom(types.Byte(0x0a)), `"0a"`},
		{"byte/ff", types.NewAtom(types.Byte(0xff)), `"ff"`},
		{"short", types.NewAtom(types.Short(-12)), `-12`},
		{"short/null", types.NewAtom(types.NullShort), `null`},
		{"short/inf", types.NewAtom(types.InfShort), `null`},
		{"short/-inf", types.NewAtom(-types.InfShort), `-32767`},
		{"int", types.NewAtom(types.Int(42)), `42`},
		{"int/null", types.NewAtom(types.NullInt), `null`},
		{"int/inf", types.NewAtom(types.InfInt), `null`},
		{"long", types.NewAtom(types.Long(1 << 60)), `1152921504606846976`},
		{"long/null", types.NewAtom(types.NullLong), `null`},
		{"long/inf", types.NewAtom(types.InfLong), `null`},
		{"real", types.NewAtom(types.Real(0.1)), `0.1`},
		{"real/integral", types.NewAtom(types.Real(3)), `3`},
		{"float", types.NewAtom(types.Float(1.5)), `1.5`},
		{"float/integral", types.NewAtom(types.Float(-2)), `-2`},
		{"float/truncated", types.NewAtom(types.Float(1.123456789)), `1.12345`},
		{"float/tiny", types.NewAtom(types.Float(0.0000001)), `0.0`},
		{"float/huge", types.NewAtom(types.Float(1e30)), `1e30`},
		{"float/null", types.Null(), `null`},
		{"float/inf", types.NewAtom(types.Float(math.Inf(1))), `"Inf"`},
		{"float/-inf", types.NewAtom(types.Float(math.Inf(-1))), `"-Inf"`},
		{"char", types.NewAtom(types.Char('a')), `"a"`},
		{"char/quote", types.NewAtom(types.Char('"')), `"\""`},
		{"symbol", types.NewAtom(types.Symbol("abc")), `"abc"`},
		{"symbol/null", types.NewAtom(types.NullSymbol), `null`},
		{"guid", types.NewAtom(guid), `"00010203-0405-0607-0809-0a0b0c0d0e0f"`},
		{"guid/null", types.NewAtom(types.NullGUID), `null`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, encode(t, test.value, encoder.Whole(), encoder.Options{}))
		})
	}
}

func TestEncodeTemporal(t *testing.T) {
	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"date", types.NewAtom(types.Date(0)), `"2000-01-01"`},
		{"date/before epoch", types.NewAtom(types.Date(-1)), `"1999-12-31"`},
		{"date/leap", types.NewAtom(types.Date(59)), `"2000-02-29"`},
		{"date/null", types.NewAtom(types.NullDate), `null`},
		{"date/inf", types.NewAtom(types.InfDate), `null`},
		{"month", types.NewAtom(types.Month(13)), `"2001-02"`},
		{"month/before epoch", types.NewAtom(types.Month(-1)), `"1999-12"`},
		{"month/null", types.NewAtom(types.NullMonth), `null`},
		{"time", types.NewAtom(types.Time(3723004)), `"01:02:03.004"`},
		{"time/null", types.NewAtom(types.NullTime), `null`},
		{"minute", types.NewAtom(types.Minute(61)), `"01:01"`},
		{"minute/null", types.NewAtom(types.NullMinute), `null`},
		{"second", types.NewAtom(types.Second(3661)), `"01:01:01"`},
		{"second/null", types.NewAtom(types.NullSecond), `null`},
		{"datetime", types.NewAtom(types.Datetime(0.5)), `"2000-01-01T12:00:00.000"`},
		{"datetime/before epoch", types.NewAtom(types.Datetime(-0.25)), `"1999-12-31T18:00:00.000"`},
		{"datetime/null", types.NewAtom(types.Datetime(math.NaN())), `null`},
		{"datetime/inf", types.NewAtom(types.Datetime(math.Inf(1))), `null`},
		{"timestamp", types.NewAtom(types.Timestamp(1)), `"2000-01-01T00:00:00.000000001"`},
		{"timestamp/before epoch", types.NewAtom(types.Timestamp(-1)), `"1999-12-31T23:59:59.999999999"`},
		{"timestamp/null", types.NewAtom(types.NullTimestamp), `null`},
		{"timespan", types.NewAtom(types.Timespan(93784000000005)), `"1D02:03:04.000000005"`},
		{"timespan/negative", types.NewAtom(types.Timespan(-93784000000005)), `"-1D02:03:04.000000005"`},
		{"timespan/zero", types.NewAtom(types.Timespan(0)), `"0D00:00:00.000000000"`},
		{"timespan/null", types.NewAtom(types.NullTimespan), `null`},
		{"minute/large", types.NewAtom(types.Minute(200000000)), `"3333333:20"`},
		{"time/negative", types.NewAtom(types.Time(-1)), `"-00:00:00.001"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, encode(t, test.value, encoder.Whole(), encoder.Options{}))
		})
	}
}

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		name     string
		value    types.Value
		sel      encoder.Selector
		expected string
	}{
		{"booleans", types.NewVector[types.Boolean](true, false), encoder.Whole(), `[true,false]`},
		{"longs", types.NewVector[types.Long](1, types.NullLong, 3), encoder.Whole(), `[1,null,3]`},
		{"longs/row", types.NewVector[types.Long](1, 2, 3), encoder.Row(2), `3`},
		{"longs/row null", types.NewVector[types.Long](1, types.NullLong), encoder.Row(1), `null`},
		{"floats", types.NewVector[types.Float](1, 1.5, types.Float(math.NaN())), encoder.Whole(), `[1,1.5,null]`},
		{"empty", types.NewVector[types.Float](), encoder.Whole(), `[]`},
		{"bytes", types.NewVector[types.Byte](0, 0x10), encoder.Whole(), `["00","10"]`},
		{"symbols", types.NewSymbols("a", "", "c"), encoder.Whole(), `["a",null,"c"]`},
		{"dates", types.NewVector[types.Date](0, types.NullDate), encoder.Whole(), `["2000-01-01",null]`},
		{"string", types.NewString("hello"), encoder.Whole(), `"hello"`},
		{"string/empty", types.NewString(""), encoder.Whole(), `""`},
		{"string/row", types.NewString("hello"), encoder.Row(1), `"e"`},
		{"string/escaped", types.NewString("a\"b\n"), encoder.Whole(), `"a\"b\n"`},
		{"atom/row", types.NewAtom(types.Long(7)), encoder.Row(3), `7`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, encode(t, test.value, test.sel, encoder.Options{}))
		})
	}
}

func TestEncodeList(t *testing.T) {
	l := types.NewList(
		types.NewAtom(types.Long(1)),
		types.NewString("ab"),
		types.NewList(),
		types.NewVector[types.Boolean](true),
	)

	require.Equal(t, `[1,"ab",[],[true]]`, encode(t, l, encoder.Whole(), encoder.Options{}))
	require.Equal(t, `"ab"`, encode(t, l, encoder.Row(1), encoder.Options{}))
	require.Equal(t, `[true]`, encode(t, l, encoder.Row(3), encoder.Options{}))
	require.Equal(t, `[]`, encode(t, types.NewList(), encoder.Whole(), encoder.Options{}))
}

func TestEncodeDict(t *testing.T) {
	kt := mustTable(t, []string{"k"}, types.NewSymbols("a", "b"))

	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"symbol keys", mustDict(t, types.NewSymbols("a", "b"), types.NewVector[types.Long](1, 2)), `{"a":1,"b":2}`},
		{"null symbol key", mustDict(t, types.NewSymbols(""), types.NewVector[types.Long](1)), `{"null":1}`},
		{"long keys", mustDict(t, types.NewVector[types.Long](1, types.NullLong), types.NewSymbols("x", "y")), `{"1":"x","null":"y"}`},
		{"boolean keys", mustDict(t, types.NewVector[types.Boolean](true, false), types.NewVector[types.Long](1, 2)), `{"true":1,"false":2}`},
		{"float keys", mustDict(t, types.NewVector[types.Float](1.5, 2), types.NewVector[types.Long](1, 2)), `{"1.5":1,"2":2}`},
		{"char keys", mustDict(t, types.NewString("ab"), types.NewVector[types.Long](1, 2)), `{"a":1,"b":2}`},
		{"date keys", mustDict(t, types.NewVector[types.Date](0), types.NewVector[types.Long](1)), `{"2000-01-01":1}`},
		{"list values", mustDict(t, types.NewSymbols("a", "b"), types.NewList(types.NewString("x"), types.NewVector[types.Long](1, 2))), `{"a":"x","b":[1,2]}`},
		{
			"list keys",
			mustDict(t,
				types.NewList(types.NewAtom(types.Long(1)), types.NewString("k"), types.NewVector[types.Long](1, 2)),
				types.NewVector[types.Long](1, 2, 3),
			),
			`{"1":1,"k":2,"[1,2]":3}`,
		},
		{"table keys", mustDict(t, kt, types.NewVector[types.Long](1, 2)), `{"{\"k\":\"a\"}":1,"{\"k\":\"b\"}":2}`},
		{"empty", mustDict(t, types.NewSymbols(), types.NewVector[types.Float]()), `{}`},
		{"nested", mustDict(t, types.NewSymbols("a"), types.NewList(mustDict(t, types.NewSymbols("b"), types.NewVector[types.Long](1)))), `{"a":{"b":1}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, encode(t, test.value, encoder.Whole(), encoder.Options{}))
		})
	}
}

func TestEncodeTable(t *testing.T) {
	tb := mustTable(t, []string{"a", "b"},
		types.NewVector[types.Long](1, 2),
		types.NewSymbols("x", "y"),
	)

	t.Run("whole", func(t *testing.T) {
		require.Equal(t, `[{"a":1,"b":"x"},{"a":2,"b":"y"}]`, encode(t, tb, encoder.Whole(), encoder.Options{}))
	})

	t.Run("row", func(t *testing.T) {
		require.Equal(t, `{"a":2,"b":"y"}`, encode(t, tb, encoder.Row(1), encoder.Options{}))
	})

	t.Run("string column", func(t *testing.T) {
		tb := mustTable(t, []string{"s"}, types.NewList(types.NewString("foo"), types.NewString("bar")))
		require.Equal(t, `[{"s":"foo"},{"s":"bar"}]`, encode(t, tb, encoder.Whole(), encoder.Options{}))
	})

	t.Run("empty", func(t *testing.T) {
		tb := mustTable(t, []string{"a"}, types.NewVector[types.Long]())
		require.Equal(t, `[]`, encode(t, tb, encoder.Whole(), encoder.Options{}))
	})

	t.Run("null column name", func(t *testing.T) {
		tb := types.Table{Columns: []types.Symbol{""}, Data: []types.Value{types.NewVector[types.Long](1)}}
		require.Equal(t, `[{"null":1}]`, encode(t, tb, encoder.Whole(), encoder.Options{}))
	})
}

func TestEncodeKeyedTable(t *testing.T) {
	keys := mustTable(t, []string{"k"}, types.NewSymbols("a", "b"))
	values := mustTable(t, []string{"v", "w"},
		types.NewVector[types.Float](1.5, 2.5),
		types.NewVector[types.Boolean](true, false),
	)

	kt, err := types.NewKeyedTable(keys, values)
	require.NoError(t, err)

	require.Equal(t,
		`[{"k":"a","v":1.5,"w":true},{"k":"b","v":2.5,"w":false}]`,
		encode(t, kt, encoder.Whole(), encoder.Options{}),
	)

	t.Run("mismatched rows", func(t *testing.T) {
		short := mustTable(t, []string{"v"}, types.NewVector[types.Float](1))
		d := types.Dict{Keys: keys, Values: short}

		require.Panics(t, func() {
			encoder.Encode(jsonw.New(0), d, encoder.Whole(), encoder.Options{})
		})
	})
}

type countingResolver struct {
	domain.Map
	calls map[string]int
}

func (r *countingResolver) Lookup(name string) ([]types.Symbol, error) {
	r.calls[name]++
	return r.Map.Lookup(name)
}

func TestEncodeEnum(t *testing.T) {
	domains := domain.Map{
		"sym":   {"a", "b", ""},
		"other": {"x"},
	}
	opts := encoder.Options{Domains: domains}

	tests := []struct {
		name     string
		value    types.Value
		sel      encoder.Selector
		opts     encoder.Options
		expected string
	}{
		{"atom", types.EnumAtom{Index: 1}, encoder.Whole(), opts, `"b"`},
		{"atom/named domain", types.EnumAtom{Domain: "other", Index: 0}, encoder.Whole(), opts, `"x"`},
		{"atom/empty symbol", types.EnumAtom{Index: 2}, encoder.Whole(), opts, `""`},
		{"atom/out of range", types.EnumAtom{Index: 3}, encoder.Whole(), opts, `null`},
		{"atom/negative", types.EnumAtom{Index: -1}, encoder.Whole(), opts, `null`},
		{"atom/null", types.EnumAtom{Index: types.NullEnum}, encoder.Whole(), opts, `null`},
		{"atom/inf", types.EnumAtom{Index: types.InfEnum}, encoder.Whole(), opts, `null`},
		{"atom/unknown domain", types.EnumAtom{Domain: "nope", Index: 0}, encoder.Whole(), opts, `null`},
		{"atom/no resolver", types.EnumAtom{Index: 0}, encoder.Whole(), encoder.Options{}, `null`},
		{"vector", types.EnumVector{Indices: []types.Enum{0, 5, 1}}, encoder.Whole(), opts, `["a",null,"b"]`},
		{"vector/row", types.EnumVector{Indices: []types.Enum{0, 1}}, encoder.Row(1), opts, `"b"`},
		{"vector/unknown domain", types.EnumVector{Domain: "nope", Indices: []types.Enum{0, 1}}, encoder.Whole(), opts, `null`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, encode(t, test.value, test.sel, test.opts))
		})
	}

	t.Run("domains are resolved once", func(t *testing.T) {
		r := &countingResolver{Map: domains, calls: make(map[string]int)}
		l := types.NewList(
			types.EnumAtom{Index: 0},
			types.EnumVector{Indices: []types.Enum{1, 0}},
			types.EnumAtom{Domain: "nope"},
			types.EnumAtom{Domain: "nope"},
		)

		require.Equal(t, `["a",["b","a"],null,null]`, encode(t, l, encoder.Whole(), encoder.Options{Domains: r}))
		require.Equal(t, map[string]int{"sym": 1, "nope": 1}, r.calls)
	})

	t.Run("enum keys", func(t *testing.T) {
		d := mustDict(t, types.EnumVector{Indices: []types.Enum{1, 0}}, types.NewVector[types.Long](1, 2))
		require.Equal(t, `{"b":1,"a":2}`, encode(t, d, encoder.Whole(), opts))
	})
}

type failingResolver struct{}

func (failingResolver) Lookup(string) ([]types.Symbol, error) {
	return nil, errors.New("boom")
}

func TestEncodeEnumResolverError(t *testing.T) {
	require.Equal(t, `null`, encode(t, types.EnumAtom{}, encoder.Whole(), encoder.Options{Domains: failingResolver{}}))
}

func TestEncodeUnknown(t *testing.T) {
	before := prometheustest.ToFloat64(metrics.UnknownKinds)

	require.Equal(t, `null`, encode(t, nil, encoder.Whole(), encoder.Options{}))
	require.Equal(t, `[1,null]`, encode(t, types.NewList(types.NewAtom(types.Long(1)), nil), encoder.Whole(), encoder.Options{}))

	require.Equal(t, before+2, prometheustest.ToFloat64(metrics.UnknownKinds))
}

// every kind must have an encoding other than null for a regular value.
func TestEncodeEveryKind(t *testing.T) {
	samples := map[types.Kind]types.Value{
		types.KindList:      types.NewList(types.NewAtom(types.Long(1))),
		types.KindBoolean:   types.NewAtom(types.Boolean(false)),
		types.KindGUID:      types.NewAtom(types.GUID{15: 1}),
		types.KindByte:      types.NewAtom(types.Byte(0)),
		types.KindShort:     types.NewAtom(types.Short(0)),
		types.KindInt:       types.NewAtom(types.Int(0)),
		types.KindLong:      types.NewAtom(types.Long(0)),
		types.KindReal:      types.NewAtom(types.Real(0)),
		types.KindFloat:     types.NewAtom(types.Float(0)),
		types.KindChar:      types.NewAtom(types.Char(' ')),
		types.KindSymbol:    types.NewAtom(types.Symbol("s")),
		types.KindTimestamp: types.NewAtom(types.Timestamp(0)),
		types.KindMonth:     types.NewAtom(types.Month(0)),
		types.KindDate:      types.NewAtom(types.Date(0)),
		types.KindDatetime:  types.NewAtom(types.Datetime(0)),
		types.KindTimespan:  types.NewAtom(types.Timespan(0)),
		types.KindMinute:    types.NewAtom(types.Minute(0)),
		types.KindSecond:    types.NewAtom(types.Second(0)),
		types.KindTime:      types.NewAtom(types.Time(0)),
		types.KindEnum:      types.EnumAtom{Index: 0},
		types.KindTable:     mustTable(t, []string{"a"}, types.NewVector[types.Long](1)),
		types.KindDict:      mustDict(t, types.NewSymbols("a"), types.NewVector[types.Long](1)),
	}
	opts := encoder.Options{Domains: domain.Map{"sym": {"a"}}}

	for _, k := range types.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			v, ok := samples[k]
			require.True(t, ok, "no sample for kind %s", k)
			require.Equal(t, k, v.Kind())

			require.NotEqual(t, `null`, encode(t, v, encoder.Whole(), opts))

			if k.IsPrimitive() {
				vec := types.Collapse(types.NewList(v, v))
				require.True(t, types.IsVector(vec))
				require.NotContains(t, encode(t, vec, encoder.Whole(), opts), `null`)
			}
		})
	}
}

func TestSelector(t *testing.T) {
	_, ok := encoder.Whole().Row()
	require.False(t, ok)

	i, ok := encoder.Row(3).Row()
	require.True(t, ok)
	require.Equal(t, 3, i)
}
