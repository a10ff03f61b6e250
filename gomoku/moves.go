package gomoku

// DefaultWindow is the Chebyshev radius around played stones inside
// which candidate moves are generated.
const DefaultWindow = 2

// CandidateMoves returns the Empty cells within window of any move in
// history, each once, in row-major order. With no history it returns
// only the center cell.
func CandidateMoves(b View, history []Move, window int) []Square {
	size := b.Size()
	if len(history) == 0 {
		return []Square{{size / 2, size / 2}}
	}
	near := make([]bool, size*size)
	for _, m := range history {
		for r := m.Row - window; r <= m.Row+window; r++ {
			for c := m.Col - window; c <= m.Col+window; c++ {
				if b.InBounds(r, c) {
					near[r*size+c] = true
				}
			}
		}
	}
	var out []Square
	for i, ok := range near {
		if !ok {
			continue
		}
		r, c := i/size, i%size
		if b.At(r, c) == Empty {
			out = append(out, Square{r, c})
		}
	}
	return out
}
