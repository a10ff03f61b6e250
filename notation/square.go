package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nelhage/gomoku/gomoku"
)

var ErrBadSquare = errors.New("illegal square")

// MaxSize is the largest board the column letters can address.
const MaxSize = 26

// squareRE matches a column letter followed by a 1-based row counted
// from the top of the board.
var squareRE = regexp.MustCompile(`^([a-z])([1-9][0-9]?)$`)

func ParseSquare(s string) (gomoku.Square, error) {
	groups := squareRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if groups == nil {
		return gomoku.Square{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	row, err := strconv.Atoi(groups[2])
	if err != nil {
		return gomoku.Square{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return gomoku.Square{Row: row - 1, Col: int(groups[1][0] - 'a')}, nil
}

func FormatSquare(sq gomoku.Square) string {
	return fmt.Sprintf("%c%d", 'a'+sq.Col, sq.Row+1)
}

func FormatMove(m gomoku.Move) string {
	return FormatSquare(m.Square())
}

// ParseSquares parses a space-separated list of squares.
func ParseSquares(s string) ([]gomoku.Square, error) {
	var out []gomoku.Square
	for _, w := range strings.Fields(s) {
		sq, err := ParseSquare(w)
		if err != nil {
			return nil, err
		}
		out = append(out, sq)
	}
	return out, nil
}

func FormatMoves(ms []gomoku.Move) string {
	var bits []string
	for _, m := range ms {
		bits = append(bits, FormatMove(m))
	}
	return strings.Join(bits, " ")
}
