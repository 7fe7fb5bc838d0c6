package commands

import (
	"context"
	"fmt"

	"github.com/chaisql/kjson"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// NewDecodeCommand returns a cli.Command for "kjson decode".
func NewDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode JSON documents and print their q display text",
		UsageText: "kjson decode [options] [FILE...]",
		Description: `The decode command reads JSON documents from files, or from stdin
if no file is given, and prints the value each one decodes to:

$ echo '{"a":1,"b":2}' | kjson decode
` + "`a`b!1 2f",
		Flags: []cli.Flag{
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

			inputs, err := readInputs(c.Args().Slice())
			if err != nil {
				return err
			}

			values, err := decodeAll(c.Context, logger, inputs, c.Int("parallel"))
			if err != nil {
				return err
			}

			for i, v := range values {
				if len(values) > 1 {
					fmt.Fprintf(c.App.Writer, "%s: ", inputs[i].name)
				}
				fmt.Fprintln(c.App.Writer, v.String())
			}

			return nil
		},
	}
}

// decodeAll decodes the inputs using up to parallel goroutines.
// Values are returned in the order of the inputs.
func decodeAll(ctx context.Context, logger *zap.Logger, inputs []input, parallel int) ([]types.Value, error) {
	values := make([]types.Value, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := kjson.Unmarshal(in.data)
			if err != nil {
				return errors.Wrapf(err, "%s", in.name)
			}

			logger.Debug("decoded", zap.String("input", in.name), zap.Stringer("kind", v.Kind()))
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return values, nil
}
