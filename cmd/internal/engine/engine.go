package engine

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/nelhage/gomoku/cmd/internal/opt"
	"github.com/nelhage/gomoku/piskvork"
)

type Command struct {
	opt opt.Search
}

func (*Command) Name() string     { return "engine" }
func (*Command) Synopsis() string { return "Launch the engine in piskvork mode" }
func (*Command) Usage() string {
	return `engine [flags]

Launch the engine speaking the Gomocup piskvork protocol on stdin and
stdout, suitable for being driven by a tournament manager.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opt.Resolve(); err != nil {
		log.Errorf("engine: %v", err)
		return subcommands.ExitUsageError
	}
	// stdout belongs to the protocol.
	log.SetOutput(os.Stderr)

	engine := piskvork.NewEngine(os.Stdin, os.Stdout)
	engine.ConfigFactory = c.opt.BuildConfig
	if err := engine.Run(ctx); err != nil {
		log.Errorf("engine: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
