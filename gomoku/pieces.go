package gomoku

import "fmt"

type Color byte
type Cell byte

const (
	NoColor Color = 0
	Black   Color = 1
	White   Color = 2
)

const (
	Empty      Cell = 0
	BlackStone Cell = Cell(Black)
	WhiteStone Cell = Cell(White)
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// Stone returns the cell state holding a stone of this color.
func (c Color) Stone() Cell {
	return Cell(c)
}

// ParseColor accepts "black"/"white" and their one-letter forms.
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b", "B":
		return Black, nil
	case "white", "w", "W":
		return White, nil
	}
	return NoColor, fmt.Errorf("bad color: %q", s)
}

func (c Cell) Color() Color {
	return Color(c)
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case BlackStone:
		return "B"
	case WhiteStone:
		return "W"
	default:
		panic(fmt.Sprintf("bad cell: %x", int(c)))
	}
}
