package commands

import (
	"fmt"

	"github.com/chaisql/kjson"
	"github.com/chaisql/kjson/domain"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// NewRoundtripCommand returns a cli.Command for "kjson roundtrip".
func NewRoundtripCommand() *cli.Command {
	return &cli.Command{
		Name:      "roundtrip",
		Usage:     "Decode JSON documents and encode them back",
		UsageText: "kjson roundtrip [options] [FILE...]",
		Description: `The roundtrip command decodes JSON documents, from files or stdin,
and prints the JSON the decoded values encode to. It shows how
a document is seen once converted:

$ echo '[1.123456789, 2]' | kjson roundtrip --decimals 2
[1.12,2]

With --enum, the keys of every object are enumerated against the named
domain of the store given with --db before being encoded back. Keys
missing from the domain are written as null.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "path of the symbol domain store used to resolve enumerations",
			},
			&cli.StringFlag{
				Name:  "enum",
				Usage: "name of the domain object keys are enumerated against, requires --db",
			},
			&cli.IntFlag{
				Name:  "decimals",
				Usage: "maximum number of fractional digits of floating-point numbers",
				Value: 5,
			},
			&cli.IntFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "number of files decoded concurrently",
				Value:   4,
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			opts := []kjson.Option{
				kjson.WithLogger(logger),
				kjson.WithMaxDecimalPlaces(c.Int("decimals")),
			}

			var syms []types.Symbol
			enum := c.String("enum")
			if path := c.String("db"); path != "" {
				st, err := domain.Open(path, nil)
				if err != nil {
					return err
				}
				defer st.Close()

				opts = append(opts, kjson.WithDomains(st))

				if enum != "" {
					syms, err = st.Lookup(enum)
					if err != nil {
						return err
					}
				}
			} else if enum != "" {
				return errors.New("--enum requires --db")
			}

			inputs, err := readInputs(c.Args().Slice())
			if err != nil {
				return err
			}

			values, err := decodeAll(c.Context, logger, inputs, c.Int("parallel"))
			if err != nil {
				return err
			}

			for i, v := range values {
				if enum != "" {
					v = enumerateKeys(v, enum, syms)
				}

				data, err := kjson.Marshal(v, opts...)
				if err != nil {
					return errors.Wrapf(err, "%s", inputs[i].name)
				}
				fmt.Fprintln(c.App.Writer, string(data))
			}

			return nil
		},
	}
}

// enumerateKeys replaces the symbol keys of the dictionaries of v by their
// index in syms. Keys not in syms get the null index.
func enumerateKeys(v types.Value, name string, syms []types.Symbol) types.Value {
	index := make(map[types.Symbol]types.Enum, len(syms))
	for i, s := range syms {
		if _, ok := index[s]; !ok {
			index[s] = types.Enum(i)
		}
	}

	var walk func(v types.Value) types.Value
	walk = func(v types.Value) types.Value {
		switch v := v.(type) {
		case types.List:
			elems := make([]types.Value, len(v.Elems))
			for i, e := range v.Elems {
				elems[i] = walk(e)
			}
			return types.NewList(elems...)
		case types.Dict:
			d := types.Dict{Keys: v.Keys, Values: walk(v.Values)}
			if keys, ok := v.Keys.(types.Vector[types.Symbol]); ok {
				ev := types.EnumVector{Domain: name, Indices: make([]types.Enum, len(keys.Elems))}
				for i, k := range keys.Elems {
					x, ok := index[k]
					if !ok {
						x = types.NullEnum
					}
					ev.Indices[i] = x
				}
				d.Keys = ev
			}
			return d
		}
		return v
	}

	return walk(v)
}
