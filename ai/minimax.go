package ai

import "github.com/nelhage/gomoku/gomoku"

// minimax returns the exact value of the position after last was
// played, with acting to move and depth plies left.
func (s *searcher) minimax(depth int, acting gomoku.Color, last gomoku.Square) int {
	if v, ok := s.leaf(depth, acting, last); ok {
		return v
	}
	s.st.Visited++

	best := worst(acting)
	for _, sq := range s.candidates() {
		s.place(sq, acting)
		v := s.minimax(depth-1, acting.Flip(), sq)
		s.undo(sq)
		if acting == gomoku.Black {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

// BestMoveByMinimax searches depth plies without pruning and returns
// the best move for the player to move, or false if there is none.
func BestMoveByMinimax(g *gomoku.Game, depth int) (gomoku.Move, bool) {
	return bestMove(g, Minimax, depth)
}
