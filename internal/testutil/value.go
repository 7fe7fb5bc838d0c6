package testutil

import (
	"math"
	"testing"

	"github.com/chaisql/kjson/internal/decoder"
	"github.com/chaisql/kjson/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// MakeValue decodes a JSON document into a value.
func MakeValue(t testing.TB, jsonDoc string) types.Value {
	t.Helper()

	v, err := decoder.Decode([]byte(jsonDoc))
	require.NoError(t, err)
	return v
}

// MakeTable creates a table from column names and columns.
func MakeTable(t testing.TB, columns []string, data ...types.Value) types.Table {
	t.Helper()

	tb, err := types.NewTable(columns, data...)
	require.NoError(t, err)
	return tb
}

// MakeDict creates a dictionary.
func MakeDict(t testing.TB, keys, values types.Value) types.Dict {
	t.Helper()

	d, err := types.NewDict(keys, values)
	require.NoError(t, err)
	return d
}

func equateNaNs[F constraints.Float](x, y F) bool {
	return x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y)))
}

var valueOptions = []cmp.Option{
	cmp.Comparer(equateNaNs[types.Real]),
	cmp.Comparer(equateNaNs[types.Float]),
	cmp.Comparer(equateNaNs[types.Datetime]),
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
}

// RequireValueEqual fails if want and got differ. NaNs are equal to each other.
func RequireValueEqual(t testing.TB, want, got types.Value) {
	t.Helper()

	if diff := cmp.Diff(want, got, valueOptions...); diff != "" {
		require.Failf(t, "mismatched values, (-want, +got)", "want: %s\ngot: %s\n%s", display(want), display(got), diff)
	}
}

func display(v types.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// RequireJSONEq fails if the JSON documents are not equivalent.
func RequireJSONEq(t testing.TB, expected string, got []byte) {
	t.Helper()

	require.JSONEq(t, expected, string(got))
}
