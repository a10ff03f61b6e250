package gomoku

// WinLength is the shortest run that wins. Longer runs win as well.
const WinLength = 5

// axes lists one direction per undirected line through a cell:
// horizontal, vertical, diagonal ↘ and diagonal ↗.
var axes = [4]Square{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// HasWinAt reports whether the stone at (row, col) lies on a run of at
// least WinLength stones of its color along any axis.
func HasWinAt(b View, row, col int) bool {
	c := b.At(row, col)
	if c == Empty {
		return false
	}
	for _, d := range axes {
		if runLength(b, c, row, col, d) >= WinLength {
			return true
		}
	}
	return false
}

// WinningLine returns the cells of the first winning run through
// (row, col), ordered along its axis, or nil.
func WinningLine(b View, row, col int) []Square {
	c := b.At(row, col)
	if c == Empty {
		return nil
	}
	for _, d := range axes {
		if runLength(b, c, row, col, d) < WinLength {
			continue
		}
		r, k := row, col
		for b.InBounds(r-d.Row, k-d.Col) && b.At(r-d.Row, k-d.Col) == c {
			r, k = r-d.Row, k-d.Col
		}
		var line []Square
		for b.InBounds(r, k) && b.At(r, k) == c {
			line = append(line, Square{r, k})
			r, k = r+d.Row, k+d.Col
		}
		return line
	}
	return nil
}

func runLength(b View, c Cell, row, col int, d Square) int {
	n := 1
	for r, k := row+d.Row, col+d.Col; b.InBounds(r, k) && b.At(r, k) == c; r, k = r+d.Row, k+d.Col {
		n++
	}
	for r, k := row-d.Row, col-d.Col; b.InBounds(r, k) && b.At(r, k) == c; r, k = r-d.Row, k-d.Col {
		n++
	}
	return n
}
