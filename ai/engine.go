package ai

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

type SearchConfig struct {
	Algorithm Algorithm
	Depth     int
	Window    int
	Threads   int
	Debug     int
}

type SearchAI struct {
	cfg SearchConfig
}

type Analysis struct {
	Move  gomoku.Move
	Found bool
	Score int
	Stats Stats
}

var _ GomokuPlayer = &SearchAI{}

func NewSearch(cfg SearchConfig) *SearchAI {
	if cfg.Depth == 0 {
		cfg.Depth = DefaultDepth
	}
	if cfg.Depth < 0 {
		cfg.Depth = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = gomoku.DefaultWindow
	}
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}
	return &SearchAI{cfg: cfg}
}

func (s *SearchAI) Config() SearchConfig {
	return s.cfg
}

func (s *SearchAI) GetMove(ctx context.Context, g *gomoku.Game) (gomoku.Move, bool) {
	a, err := s.Analyze(ctx, g)
	if err != nil {
		log.Printf("[%s] search abandoned: %v", s.cfg.Algorithm, err)
		return gomoku.Move{}, false
	}
	return a.Move, a.Found
}

// Analyze scores every candidate move of the player to move at the
// configured depth and returns the best one. Ties go to the earliest
// candidate. ctx is consulted only between top-level candidates.
func (s *SearchAI) Analyze(ctx context.Context, g *gomoku.Game) (Analysis, error) {
	start := time.Now()
	a := Analysis{Stats: Stats{Depth: s.cfg.Depth}}
	if g.Terminal() {
		return a, nil
	}
	ms := gomoku.CandidateMoves(g.Board(), g.History(), s.cfg.Window)
	scores := make([]int, len(ms))

	var err error
	if s.cfg.Threads > 1 && len(ms) > 1 {
		err = s.scoreParallel(ctx, g, ms, scores, &a.Stats)
	} else {
		err = s.scoreSerial(ctx, g, ms, scores, &a.Stats)
	}
	a.Stats.Elapsed = time.Since(start)
	if err != nil {
		return a, err
	}

	toMove := g.ToMove()
	best := worst(toMove)
	for i, sq := range ms {
		if s.cfg.Debug > 1 {
			log.Printf("[%s]  candidate %s score=%d", s.cfg.Algorithm, notation.FormatSquare(sq), scores[i])
		}
		if better(toMove, scores[i], best) {
			best = scores[i]
			a.Move = gomoku.Move{Row: sq.Row, Col: sq.Col, Color: toMove}
			a.Found = true
		}
	}
	if a.Found {
		a.Score = best
	}
	if s.cfg.Debug > 0 {
		log.Printf("[%s] depth=%d move=%s score=%d candidates=%d visited=%d evaluated=%d terminal=%d cut=%d time=%s",
			s.cfg.Algorithm, s.cfg.Depth, formatResult(a), a.Score, len(ms),
			a.Stats.Visited, a.Stats.Evaluated, a.Stats.Terminal, a.Stats.CutNodes,
			a.Stats.Elapsed)
	}
	return a, nil
}

func (s *SearchAI) scoreSerial(ctx context.Context, g *gomoku.Game, ms []gomoku.Square, scores []int, st *Stats) error {
	sr := newSearcher(g, s.cfg.Window, s.cfg.Algorithm == AlphaBeta)
	defer st.Merge(&sr.st)
	for i, sq := range ms {
		if err := ctx.Err(); err != nil {
			return err
		}
		scores[i] = sr.score(sq, g.ToMove(), s.cfg.Depth)
	}
	return nil
}

// scoreParallel splits the top-level candidates over cfg.Threads
// workers. Each worker searches its own copy of the board.
func (s *SearchAI) scoreParallel(ctx context.Context, g *gomoku.Game, ms []gomoku.Square, scores []int, st *Stats) error {
	grp, ctx := errgroup.WithContext(ctx)
	input := make(chan int)
	grp.Go(func() error {
		defer close(input)
		for i := range ms {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case input <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var mu sync.Mutex
	toMove := g.ToMove()
	for w := 0; w < s.cfg.Threads; w++ {
		grp.Go(func() error {
			sr := newSearcher(g, s.cfg.Window, s.cfg.Algorithm == AlphaBeta)
			for i := range input {
				scores[i] = sr.score(ms[i], toMove, s.cfg.Depth)
			}
			mu.Lock()
			st.Merge(&sr.st)
			mu.Unlock()
			return nil
		})
	}
	return grp.Wait()
}

func formatResult(a Analysis) string {
	if !a.Found {
		return "none"
	}
	return notation.FormatSquare(a.Move.Square())
}

func bestMove(g *gomoku.Game, alg Algorithm, depth int) (gomoku.Move, bool) {
	if depth < 1 {
		depth = 1
	}
	a, _ := NewSearch(SearchConfig{Algorithm: alg, Depth: depth}).Analyze(context.Background(), g)
	return a.Move, a.Found
}
