package gomokutest

import (
	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

func Square(s string) gomoku.Square {
	sq, e := notation.ParseSquare(s)
	if e != nil {
		panic(e)
	}
	return sq
}

func Squares(s string) []gomoku.Square {
	sqs, e := notation.ParseSquares(s)
	if e != nil {
		panic(e)
	}
	return sqs
}

// Game replays ms, a space-separated list of squares, on a fresh
// board of the given size with Black to move first.
func Game(size int, ms string) *gomoku.Game {
	return GameFrom(gomoku.Config{Size: size}, ms)
}

func GameFrom(cfg gomoku.Config, ms string) *gomoku.Game {
	g, e := gomoku.Replay(cfg, Squares(ms))
	if e != nil {
		panic(e)
	}
	return g
}
