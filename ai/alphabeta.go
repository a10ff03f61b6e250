package ai

import "github.com/nelhage/gomoku/gomoku"

// alphaBeta computes the same value as minimax for every node whose
// value lies inside (α, β); outside the window it stops expanding as
// soon as the bound is crossed.
func (s *searcher) alphaBeta(depth int, acting gomoku.Color, last gomoku.Square, α, β int) int {
	if v, ok := s.leaf(depth, acting, last); ok {
		return v
	}
	s.st.Visited++

	best := worst(acting)
	for _, sq := range s.candidates() {
		s.place(sq, acting)
		v := s.alphaBeta(depth-1, acting.Flip(), sq, α, β)
		s.undo(sq)
		if acting == gomoku.Black {
			best = max(best, v)
			α = max(α, v)
			if α >= β {
				s.st.CutNodes++
				break
			}
		} else {
			best = min(best, v)
			β = min(β, v)
			if β <= α {
				s.st.CutNodes++
				break
			}
		}
	}
	return best
}

// BestMoveByAlphaBeta is BestMoveByMinimax with alpha-beta pruning. It
// returns the same move.
func BestMoveByAlphaBeta(g *gomoku.Game, depth int) (gomoku.Move, bool) {
	return bestMove(g, AlphaBeta, depth)
}
