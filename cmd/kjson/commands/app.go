package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// NewApp creates the kjson CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "kjson"
	app.Usage = "Convert between JSON and kdb+ values"
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "log debug messages to stderr",
		},
	}

	app.Commands = []*cli.Command{
		NewDecodeCommand(),
		NewRoundtripCommand(),
		NewDomainCommand(),
		NewVersionCommand(),
	}

	// inject cancelable context to all commands
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()
		<-ch
	}()

	for i := range app.Commands {
		action := app.Commands[i].Action
		if action == nil {
			continue
		}
		app.Commands[i].Action = func(c *cli.Context) error {
			c.Context = ctx
			return action(c)
		}
	}

	app.After = func(c *cli.Context) error {
		signal.Stop(ch)
		cancel()
		return nil
	}

	return app
}

// newLogger returns a development logger if --debug is set.
func newLogger(c *cli.Context) (*zap.Logger, error) {
	if !c.Bool("debug") {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}
