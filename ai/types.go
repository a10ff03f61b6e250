package ai

import (
	"github.com/nelhage/gomoku/gomoku"
	"golang.org/x/net/context"
)

// GomokuPlayer chooses a move for the player to move in g. It returns
// false when it has nothing to play.
type GomokuPlayer interface {
	GetMove(ctx context.Context, g *gomoku.Game) (gomoku.Move, bool)
}
