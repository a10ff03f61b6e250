package play

import (
	"bufio"
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/cli"
	"github.com/nelhage/gomoku/cmd/internal/opt"
	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

type Command struct {
	white string
	black string
	limit time.Duration
	out   string

	unicode bool
	opt     opt.Search
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Gomoku from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Gomoku on the command-line, against a human or AI. Players are
"human", "rand[:seed]", "minimax[:depth]" or "alphabeta[:depth]".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "alphabeta", "white player")
	flags.StringVar(&c.black, "black", "human", "black player")
	flags.DurationVar(&c.limit, "limit", time.Minute, "ai time limit")
	flags.StringVar(&c.out, "out", "", "write the game record to file")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	c.opt.AddFlags(flags)
	c.opt.AddGameFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opt.Resolve(); err != nil {
		log.Errorf("play: %v", err)
		return subcommands.ExitUsageError
	}
	cfg, _ := c.opt.GameConfig()

	in := bufio.NewReader(os.Stdin)
	black, err := c.parsePlayer(in, c.black)
	if err != nil {
		log.Errorf("-black: %v", err)
		return subcommands.ExitUsageError
	}
	white, err := c.parsePlayer(in, c.white)
	if err != nil {
		log.Errorf("-white: %v", err)
		return subcommands.ExitUsageError
	}

	st := &cli.CLI{
		Config: cfg,
		Out:    os.Stdout,
		Black:  black,
		White:  white,
		Glyphs: glyphs(c.unicode),
	}
	g := st.Play()
	if c.out != "" {
		r := notation.NewRecord(g,
			notation.Tag{Name: "Black", Value: c.black},
			notation.Tag{Name: "White", Value: c.white},
		)
		if err := os.WriteFile(c.out, []byte(r.Render()), 0644); err != nil {
			log.Errorf("write %s: %v", c.out, err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	limit time.Duration
	p     ai.GomokuPlayer
}

func (a *aiWrapper) GetMove(g *gomoku.Game) (gomoku.Square, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), a.limit)
	defer cancel()
	m, ok := a.p.GetMove(ctx, g)
	return m.Square(), ok
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), nil
	}
	p, err := opt.ParsePlayer(s, c.opt.BuildConfig(c.opt.Size))
	if err != nil {
		return nil, err
	}
	return &aiWrapper{c.limit, p}, nil
}
