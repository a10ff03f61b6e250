package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(g *gomoku.Game) (gomoku.Square, bool) {
	for {
		fmt.Fprintf(c.out, "\n%s> ", g.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return gomoku.Square{}, false
		}
		sq, perr := ParseInput(line)
		if perr != nil {
			fmt.Fprintln(c.out, "parse error: ", perr)
			if err != nil {
				return gomoku.Square{}, false
			}
			continue
		}
		return sq, true
	}
}

// ParseInput accepts a square in notation ("h8") or a zero-based
// "row col" pair ("7 7" or "7,7").
func ParseInput(line string) (gomoku.Square, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	switch len(fields) {
	case 1:
		return notation.ParseSquare(fields[0])
	case 2:
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return gomoku.Square{}, fmt.Errorf("bad row: %q", fields[0])
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return gomoku.Square{}, fmt.Errorf("bad column: %q", fields[1])
		}
		return gomoku.Square{Row: row, Col: col}, nil
	}
	return gomoku.Square{}, fmt.Errorf("expected a square like h8 or a row and column: %q", strings.TrimSpace(line))
}
