package ai

import (
	"math/rand"

	"github.com/nelhage/gomoku/gomoku"
	"golang.org/x/net/context"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, g *gomoku.Game) (gomoku.Move, bool) {
	if g.Terminal() {
		return gomoku.Move{}, false
	}
	moves := gomoku.CandidateMoves(g.Board(), g.History(), gomoku.DefaultWindow)
	if len(moves) == 0 {
		return gomoku.Move{}, false
	}
	sq := moves[r.r.Intn(len(moves))]
	return gomoku.Move{Row: sq.Row, Col: sq.Col, Color: g.ToMove()}, true
}

func NewRandom(seed int64) GomokuPlayer {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
