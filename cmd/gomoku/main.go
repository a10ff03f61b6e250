package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/nelhage/gomoku/cmd/internal/analyze"
	"github.com/nelhage/gomoku/cmd/internal/engine"
	"github.com/nelhage/gomoku/cmd/internal/play"
	"github.com/nelhage/gomoku/cmd/internal/selfplay"
	"github.com/nelhage/gomoku/cmd/internal/serve"
)

var logLevel = flag.String("log-level", "info", "logrus level (debug, info, warn, error)")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&engine.Command{}, "engine")
	subcommands.Register(&serve.Command{}, "engine")

	flag.Parse()
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("-log-level: %v", err)
	}
	log.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	status := subcommands.Execute(ctx)
	cancel()
	os.Exit(int(status))
}
