package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/gomoku/cmd/internal/opt"
	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

type Command struct {
	p1 string
	p2 string

	seed   int64
	games  int
	cutoff int
	swap   bool

	limit   time.Duration
	threads int

	out     string
	summary string
	verbose bool

	opt opt.Search
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "minimax:2", "player 1")
	flags.StringVar(&c.p2, "p2", "alphabeta:3", "player 2")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after how many plies (0: board area)")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.DurationVar(&c.limit, "limit", 0, "amount of time to search each move")
	flags.IntVar(&c.threads, "workers", 4, "number of games played in parallel")
	flags.StringVar(&c.out, "out", "", "directory to write game records to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.opt.AddFlags(flags)
	c.opt.AddGameFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opt.Resolve(); err != nil {
		log.Errorf("selfplay: %v", err)
		return subcommands.ExitUsageError
	}
	game, _ := c.opt.GameConfig()
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	cfg := &Config{
		Game:    game,
		Search:  c.opt.BuildConfig(game.Size),
		Swap:    c.swap,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Limit:   c.limit,
		Verbose: c.verbose,
		P1:      c.p1,
		P2:      c.p2,
	}

	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Errorf("selfplay: %v", err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if c.summary == "" {
			c.summary = path.Join(c.out, "summary.json")
		}
		for _, r := range st.Games {
			if err := c.writeGame(c.out, &r); err != nil {
				log.Errorf("writing game: %v", err)
			}
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Errorf("writing summary: %v", err)
		}
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("done games=%d plies=%d seed=%d draws=%d cutoff=%d white=%d black=%d",
		st.Count(), st.Plies, c.seed, st.Draws, st.Cutoff, st.White, st.Black))
	writeTable(os.Stderr, &st)

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	if a+b > 0 {
		log.Printf("p[one-sided]=%f", binomTest(a, b, 0.5))
	}

	return subcommands.ExitSuccess
}

func writeTable(out *os.File, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tblack\twhite\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].BlackWins, st.Players[0].WhiteWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].BlackWins, st.Players[1].WhiteWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].BlackWins+st.Players[1].BlackWins,
		st.Players[0].WhiteWins+st.Players[1].WhiteWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()
}

func (c *Command) writeGame(d string, r *Result) error {
	if err := os.MkdirAll(d, 0755); err != nil {
		return err
	}
	p1, p2 := c.p1, c.p2
	if r.spec.p1color == gomoku.White {
		p1, p2 = p2, p1
	}
	rec := notation.NewRecord(r.Game,
		notation.Tag{Name: "Black", Value: p1},
		notation.Tag{Name: "White", Value: p2},
	)
	return os.WriteFile(path.Join(d, fmt.Sprintf("%d.txt", r.spec.i)), []byte(rec.Render()), 0644)
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Limit:   c.limit,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
