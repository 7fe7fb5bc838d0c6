/*
Package kjson converts values of a columnar, typed value model to JSON and back.

The value model is the one of kdb+: atoms and vectors of booleans, bytes,
integers, floats, chars, symbols, GUIDs, temporal kinds and enumerations,
general lists, dictionaries, tables and keyed tables. See the types package.

Marshal

Marshal turns a value into JSON, keeping as much of its type as JSON allows:

	v, _ := types.NewTable([]string{"a", "b"},
		types.NewVector[types.Long](1, 2),
		types.NewSymbols("x", "y"),
	)
	data, err := kjson.Marshal(v)
	// [{"a":1,"b":"x"},{"a":2,"b":"y"}]

Nulls and infinities of every kind are written as null, except the infinities
of floating-point numbers which are written as the strings "Inf" and "-Inf".
Temporal values are written as ISO 8601 like strings.

Enumerations are resolved against the symbol domains given with WithDomains.
Each domain is resolved at most once per call.

Unmarshal

Unmarshal turns JSON into a value. Numbers become floats, strings become
char vectors and null becomes the generic null. Arrays whose elements are
all atoms of the same kind become vectors, and objects become dictionaries
keyed by symbols.

	v, err := kjson.Unmarshal([]byte(`{"a":1,"b":2}`))
	// `a`b!1 2f
*/
package kjson
