package gomoku

import "fmt"

// Square addresses a cell by zero-based row and column.
type Square struct {
	Row, Col int
}

// View is the read-only face of a Board. Game hands out Views so that
// only ApplyMove mutates the board a game owns.
type View interface {
	Size() int
	At(row, col int) Cell
	InBounds(row, col int) bool
	Full() bool
	Clone() *Board
}

type Board struct {
	size   int
	filled int
	cells  []Cell
}

var _ View = &Board{}

func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("illegal size: %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b *Board) At(row, col int) Cell {
	return b.cells[b.index("At", row, col)]
}

// Set writes a cell. Callers outside this package only ever hold
// clones, which the search engines explore with place/undo.
func (b *Board) Set(row, col int, c Cell) {
	i := b.index("Set", row, col)
	old := b.cells[i]
	switch {
	case old == Empty && c != Empty:
		b.filled++
	case old != Empty && c == Empty:
		b.filled--
	}
	b.cells[i] = c
}

// Full reports whether no cell is Empty.
func (b *Board) Full() bool {
	return b.filled == len(b.cells)
}

// Stones is the number of occupied cells.
func (b *Board) Stones() int {
	return b.filled
}

func (b *Board) Clone() *Board {
	out := &Board{
		size:   b.size,
		filled: b.filled,
		cells:  make([]Cell, len(b.cells)),
	}
	copy(out.cells, b.cells)
	return out
}

func (b *Board) clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.filled = 0
}

func (b *Board) index(op string, row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("%s: out of bounds (%d,%d) on %dx%d", op, row, col, b.size, b.size))
	}
	return row*b.size + col
}
