package selfplay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/cmd/internal/opt"
	"github.com/nelhage/gomoku/gomoku"
)

type Config struct {
	Games int

	Verbose bool

	Game   gomoku.Config
	P1, P2 string
	Search ai.SearchConfig

	Swap    bool
	Threads int
	Seed    int64
	Cutoff  int
	Limit   time.Duration
}

type Stats struct {
	Players [2]struct {
		Wins      int
		WhiteWins int
		BlackWins int
	}
	White, Black int
	Draws        int
	Cutoff       int
	Plies        int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.White + s.Black + s.Draws + s.Cutoff
}

func (s *Stats) add(r *Result) {
	s.Plies += r.Game.MoveNumber()
	switch {
	case r.Winner == gomoku.White:
		s.White++
	case r.Winner == gomoku.Black:
		s.Black++
	case r.Game.Terminal():
		s.Draws++
	default:
		s.Cutoff++
	}
	if r.Winner == gomoku.NoColor {
		return
	}
	pst := &s.Players[0]
	if r.Winner != r.spec.p1color {
		pst = &s.Players[1]
	}
	if r.Winner == gomoku.White {
		pst.WhiteWins++
	} else {
		pst.BlackWins++
	}
	pst.Wins++
}

type gameSpec struct {
	c       *Config
	i       int
	r       *rand.Rand
	p1color gomoku.Color
}

type Result struct {
	spec   gameSpec
	Game   *gomoku.Game
	Winner gomoku.Color
}

// Simulate plays every game c describes and tallies the results.
// Results are collected in the order games finish.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	rc := make(chan Result)
	errc := make(chan error, 1)
	go func() {
		errc <- startGames(ctx, c, rc)
	}()
	for r := range rc {
		if c.Verbose {
			log.Printf("game n=%d plies=%d p1=%s winner=%s",
				r.spec.i, r.Game.MoveNumber(), r.spec.p1color, r.Winner)
		}
		st.add(&r)
		st.Games = append(st.Games, r)
	}
	return st, <-errc
}

func startGames(ctx context.Context, c *Config, rc chan<- Result) error {
	defer close(rc)
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	grp, ctx := errgroup.WithContext(ctx)
	gc := make(chan gameSpec)
	grp.Go(func() error {
		defer close(gc)
		r := rand.New(rand.NewSource(c.Seed))
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			p1color := gomoku.Black
			if c.Swap && g%2 == 1 {
				p1color = gomoku.White
			}
			spec := gameSpec{
				c:       c,
				i:       g,
				p1color: p1color,
				r:       rand.New(rand.NewSource(r.Int63())),
			}
			select {
			case gc <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			return worker(ctx, gc, rc)
		})
	}
	return grp.Wait()
}

// buildPlayer parses spec, giving an unseeded random player a seed
// drawn from the game's generator.
func buildPlayer(spec string, g *gameSpec) (ai.GomokuPlayer, error) {
	if spec == "rand" {
		spec = fmt.Sprintf("rand:%d", g.r.Int63())
	}
	return opt.ParsePlayer(spec, g.c.Search)
}

func worker(ctx context.Context, games <-chan gameSpec, out chan<- Result) error {
	for g := range games {
		r, err := playGame(ctx, &g)
		if err != nil {
			return err
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func playGame(ctx context.Context, g *gameSpec) (Result, error) {
	p1, err := buildPlayer(g.c.P1, g)
	if err != nil {
		return Result{}, fmt.Errorf("p1: %w", err)
	}
	p2, err := buildPlayer(g.c.P2, g)
	if err != nil {
		return Result{}, fmt.Errorf("p2: %w", err)
	}
	black, white := p1, p2
	if g.p1color == gomoku.White {
		black, white = p2, p1
	}

	game := gomoku.New(g.c.Game)
	cutoff := g.c.Cutoff
	if cutoff <= 0 {
		cutoff = game.Size() * game.Size()
	}
	for i := 0; i < cutoff && !game.Terminal(); i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		p := black
		if game.ToMove() == gomoku.White {
			p = white
		}
		mctx, cancel := ctx, context.CancelFunc(func() {})
		if g.c.Limit != 0 {
			mctx, cancel = context.WithTimeout(ctx, g.c.Limit)
		}
		m, ok := p.GetMove(mctx, game)
		cancel()
		if !ok {
			break
		}
		if !game.ApplyMove(m.Row, m.Col) {
			return Result{}, fmt.Errorf("game %d: illegal move (%d,%d) by %s",
				g.i, m.Row, m.Col, game.ToMove())
		}
	}
	_, winner := game.GameOver()
	return Result{spec: *g, Game: game, Winner: winner}, nil
}
