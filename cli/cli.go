package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

type Player interface {
	GetMove(g *gomoku.Game) (gomoku.Square, bool)
}

type Glyphs struct {
	Black, White, Empty string
}

type CLI struct {
	g *gomoku.Game

	Config gomoku.Config
	Glyphs *Glyphs
	Out    io.Writer
	Black  Player
	White  Player
}

var DefaultGlyphs = Glyphs{
	Black: "X",
	White: "O",
	Empty: ".",
}

var UnicodeGlyphs = Glyphs{
	Black: "●",
	White: "○",
	Empty: "·",
}

// Play runs one game to completion and returns it. It stops early if
// the player to move has no move to offer.
func (c *CLI) Play() *gomoku.Game {
	c.g = gomoku.New(c.Config)
	for {
		c.render()
		if over, winner := c.g.GameOver(); over {
			fmt.Fprintf(c.Out, "Game Over! ")
			if winner == gomoku.NoColor {
				fmt.Fprintf(c.Out, "Draw.\n")
			} else {
				last, _ := c.g.LastMove()
				line := gomoku.WinningLine(c.g.Board(), last.Row, last.Col)
				fmt.Fprintf(c.Out, "%s wins with", winner)
				for _, sq := range line {
					fmt.Fprintf(c.Out, " %s", notation.FormatSquare(sq))
				}
				fmt.Fprintln(c.Out)
			}
			return c.g
		}
		p := c.Black
		if c.g.ToMove() == gomoku.White {
			p = c.White
		}
		sq, ok := p.GetMove(c.g)
		if !ok {
			fmt.Fprintf(c.Out, "%s has no move; stopping.\n", c.g.ToMove())
			return c.g
		}
		n := c.g.MoveNumber()
		if !c.g.ApplyMove(sq.Row, sq.Col) {
			fmt.Fprintln(c.Out, "illegal move:", notation.FormatSquare(sq))
			continue
		}
		if n%2 == 0 {
			fmt.Fprintf(c.Out, "%d. %s", n/2+1, notation.FormatSquare(sq))
		} else {
			fmt.Fprintf(c.Out, "%d. ... %s", n/2+1, notation.FormatSquare(sq))
		}
	}
}

func (c *CLI) Game() *gomoku.Game {
	return c.g
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.g)
}

// RenderBoard draws g with row 1 at the top. The last move is
// bracketed.
func RenderBoard(gl *Glyphs, out io.Writer, g *gomoku.Game) {
	if gl == nil {
		gl = &DefaultGlyphs
	}
	b := g.Board()
	last, hasLast := g.LastMove()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", g.ToMove())
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "\t")
	for col := 0; col < b.Size(); col++ {
		fmt.Fprintf(w, "%c\t", 'a'+col)
	}
	fmt.Fprintf(w, "\n")
	for row := 0; row < b.Size(); row++ {
		fmt.Fprintf(w, "%d\t", row+1)
		for col := 0; col < b.Size(); col++ {
			var s string
			switch b.At(row, col) {
			case gomoku.Empty:
				s = gl.Empty
			case gomoku.BlackStone:
				s = gl.Black
			case gomoku.WhiteStone:
				s = gl.White
			}
			if hasLast && last.Row == row && last.Col == col {
				s = "[" + s + "]"
			}
			fmt.Fprintf(w, "%s\t", s)
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
	fmt.Fprintf(out, "moves: %d\n", g.MoveNumber())
}
