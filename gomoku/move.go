package gomoku

// Move is a single placement. Moves are values; a recorded Move never
// changes.
type Move struct {
	Row, Col int
	Color    Color
}

func (m Move) Square() Square {
	return Square{m.Row, m.Col}
}

func (m Move) Equal(rhs Move) bool {
	return m == rhs
}
