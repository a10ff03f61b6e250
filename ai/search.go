package ai

import (
	"fmt"
	"time"

	"github.com/nelhage/gomoku/gomoku"
)

const (
	// Scores are from Black's point of view: Black maximizes, White
	// minimizes.
	WinScore  = 1
	LossScore = -1

	MaxEval = 1 << 30
	MinEval = -MaxEval

	DefaultDepth = 3
)

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	switch a {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		panic(fmt.Sprintf("bad algorithm: %d", int(a)))
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return AlphaBeta, nil
	}
	return Minimax, fmt.Errorf("unknown algorithm: %q", s)
}

type Stats struct {
	Depth     int
	Visited   uint64
	Terminal  uint64
	Evaluated uint64
	CutNodes  uint64

	Elapsed time.Duration
}

func (s *Stats) Merge(other *Stats) {
	s.Visited += other.Visited
	s.Terminal += other.Terminal
	s.Evaluated += other.Evaluated
	s.CutNodes += other.CutNodes
}

// searcher owns a private board and history for one depth-first walk.
// It places and removes stones in place, so it must never be shared
// between goroutines.
type searcher struct {
	board   *gomoku.Board
	history []gomoku.Move
	window  int
	prune   bool

	st Stats
}

func newSearcher(g *gomoku.Game, window int, prune bool) *searcher {
	return &searcher{
		board:   g.Board().Clone(),
		history: g.History(),
		window:  window,
		prune:   prune,
	}
}

func (s *searcher) place(sq gomoku.Square, c gomoku.Color) {
	s.board.Set(sq.Row, sq.Col, c.Stone())
	s.history = append(s.history, gomoku.Move{Row: sq.Row, Col: sq.Col, Color: c})
}

func (s *searcher) undo(sq gomoku.Square) {
	s.board.Set(sq.Row, sq.Col, gomoku.Empty)
	s.history = s.history[:len(s.history)-1]
}

func (s *searcher) candidates() []gomoku.Square {
	return gomoku.CandidateMoves(s.board, s.history, s.window)
}

// leaf scores a node entered right after last was played. A winning
// last move belongs to the opponent of acting.
func (s *searcher) leaf(depth int, acting gomoku.Color, last gomoku.Square) (int, bool) {
	if gomoku.HasWinAt(s.board, last.Row, last.Col) {
		s.st.Terminal++
		if acting == gomoku.White {
			return WinScore, true
		}
		return LossScore, true
	}
	if depth <= 0 || s.board.Full() {
		s.st.Evaluated++
		return 0, true
	}
	return 0, false
}

// score plays sq for toMove and searches the reply to the given
// depth, returning the value of the resulting position.
func (s *searcher) score(sq gomoku.Square, toMove gomoku.Color, depth int) int {
	s.place(sq, toMove)
	var v int
	if s.prune {
		v = s.alphaBeta(depth-1, toMove.Flip(), sq, MinEval, MaxEval)
	} else {
		v = s.minimax(depth-1, toMove.Flip(), sq)
	}
	s.undo(sq)
	return v
}

func better(toMove gomoku.Color, v, best int) bool {
	if toMove == gomoku.Black {
		return v > best
	}
	return v < best
}

func worst(toMove gomoku.Color) int {
	if toMove == gomoku.Black {
		return MinEval
	}
	return MaxEval
}
