package analyze

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/nelhage/gomoku/cli"
	"github.com/nelhage/gomoku/cmd/internal/opt"
	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

type Command struct {
	quiet      bool
	unicode    bool
	cpuProfile string

	move      int
	moves     string
	variation string
	single    bool

	timeLimit time.Duration
	opt       opt.Search
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position from a game record" }
func (*Command) Usage() string {
	return `analyze [options] [FILE]

Evaluate a position using both search algorithms and report whether
they agree. The position is the end of FILE, or of -moves when no
file is given.

Use -move to stop the replay early, and -variation to play additional
moves prior to analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.StringVar(&c.cpuProfile, "cpuprofile", "", "write CPU profile")

	flags.IntVar(&c.move, "move", 0, "analyze after this many plies (0: all)")
	flags.StringVar(&c.moves, "moves", "", "space-separated squares to analyze instead of a file")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves after the given position")
	flags.BoolVar(&c.single, "single", false, "only run the configured -algorithm")

	flags.DurationVar(&c.timeLimit, "limit", time.Minute, "limit of how much time to use")
	c.opt.AddFlags(flags)
	c.opt.AddGameFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opt.Resolve(); err != nil {
		log.Errorf("analyze: %v", err)
		return subcommands.ExitUsageError
	}
	g, err := c.position(flag.Arg(0))
	if err != nil {
		log.Errorf("analyze: %v", err)
		return subcommands.ExitFailure
	}

	if c.cpuProfile != "" {
		f, e := os.OpenFile(c.cpuProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if e != nil {
			log.Errorf("open cpu-profile: %s: %v", c.cpuProfile, e)
			return subcommands.ExitFailure
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeLimit)
	defer cancel()

	a := &Analyzer{
		Out:     os.Stdout,
		Quiet:   c.quiet,
		Base:    c.opt.BuildConfig(g.Size()),
		Compare: !c.single,
	}
	if c.unicode {
		a.Glyphs = &cli.UnicodeGlyphs
	}
	if _, err := a.Analyze(ctx, g); err != nil {
		log.Errorf("analyze: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) position(path string) (*gomoku.Game, error) {
	var (
		cfg gomoku.Config
		sqs []gomoku.Square
		err error
	)
	if path != "" {
		r, err := notation.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		if cfg, err = r.Config(); err != nil {
			return nil, err
		}
		sqs = r.Moves
	} else {
		cfg, _ = c.opt.GameConfig()
		if sqs, err = notation.ParseSquares(c.moves); err != nil {
			return nil, fmt.Errorf("-moves: %w", err)
		}
	}
	if c.move > 0 && c.move < len(sqs) {
		sqs = sqs[:c.move]
	}
	if c.variation != "" {
		v, err := notation.ParseSquares(c.variation)
		if err != nil {
			return nil, fmt.Errorf("-variation: %w", err)
		}
		sqs = append(sqs[:len(sqs):len(sqs)], v...)
	}
	return gomoku.Replay(cfg, sqs)
}
