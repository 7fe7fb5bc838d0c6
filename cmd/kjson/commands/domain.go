package commands

import (
	"fmt"

	"github.com/chaisql/kjson/domain"
	"github.com/chaisql/kjson/types"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// NewDomainCommand returns a cli.Command for "kjson domain".
func NewDomainCommand() *cli.Command {
	return &cli.Command{
		Name:  "domain",
		Usage: "Manage the symbol domains used to resolve enumerations",
		Subcommands: []*cli.Command{
			{
				Name:      "put",
				Usage:     "Create or replace a domain",
				UsageText: "kjson domain put --db PATH NAME [SYMBOL...]",
				Flags:     []cli.Flag{newDBFlag()},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return errors.New(c.Command.UsageText)
					}

					args := c.Args().Tail()
					syms := make([]types.Symbol, len(args))
					for i, a := range args {
						syms[i] = types.Symbol(a)
					}

					return withStore(c, func(st *domain.Store) error {
						return st.Put(name, syms)
					})
				},
			},
			{
				Name:      "get",
				Usage:     "Print the symbols of a domain, one per line",
				UsageText: "kjson domain get --db PATH NAME",
				Flags:     []cli.Flag{newDBFlag()},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return errors.New(c.Command.UsageText)
					}

					return withStore(c, func(st *domain.Store) error {
						syms, err := st.Lookup(name)
						if err != nil {
							return err
						}
						for _, s := range syms {
							fmt.Fprintln(c.App.Writer, s)
						}
						return nil
					})
				},
			},
			{
				Name:      "list",
				Usage:     "Print the name of every domain",
				UsageText: "kjson domain list --db PATH",
				Flags:     []cli.Flag{newDBFlag()},
				Action: func(c *cli.Context) error {
					return withStore(c, func(st *domain.Store) error {
						names, err := st.Names()
						if err != nil {
							return err
						}
						for _, n := range names {
							fmt.Fprintln(c.App.Writer, n)
						}
						return nil
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a domain",
				UsageText: "kjson domain delete --db PATH NAME",
				Flags:     []cli.Flag{newDBFlag()},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return errors.New(c.Command.UsageText)
					}

					return withStore(c, func(st *domain.Store) error {
						return st.Delete(name)
					})
				},
			},
		},
	}
}

func newDBFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Usage:    "path of the symbol domain store",
		Required: true,
	}
}

func withStore(c *cli.Context, fn func(st *domain.Store) error) (err error) {
	st, err := domain.Open(c.String("db"), nil)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, st.Close())
	}()

	return fn(st)
}
