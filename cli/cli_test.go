package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/gomokutest"
)

type scripted struct {
	moves []gomoku.Square
}

func (s *scripted) GetMove(g *gomoku.Game) (gomoku.Square, bool) {
	if len(s.moves) == 0 {
		return gomoku.Square{}, false
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, true
}

func TestPlayToWin(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Config: gomoku.Config{Size: 15},
		Out:    &out,
		Black:  &scripted{gomokutest.Squares("h8 i8 j8 k8 l8")},
		White:  &scripted{gomokutest.Squares("a1 a1 b1 c1 d1")},
	}
	g := c.Play()
	assert.Equal(t, gomoku.Outcome{Result: gomoku.Win, Winner: gomoku.Black}, g.Outcome())
	assert.Equal(t, 9, g.MoveNumber())
	assert.Contains(t, out.String(), "illegal move: a1")
	assert.Contains(t, out.String(), "black wins with h8 i8 j8 k8 l8")
	assert.Contains(t, out.String(), "5. l8")
	assert.Same(t, g, c.Game())
}

func TestPlayStopsWithoutMove(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Config: gomoku.Config{Size: 9, First: gomoku.White},
		Out:    &out,
		Black:  &scripted{},
		White:  &scripted{gomokutest.Squares("e5")},
	}
	g := c.Play()
	assert.False(t, g.Terminal())
	assert.Equal(t, 1, g.MoveNumber())
	assert.Contains(t, out.String(), "black has no move")
}

func TestRenderBoard(t *testing.T) {
	var out bytes.Buffer
	g := gomokutest.Game(5, "c3 b2")
	RenderBoard(nil, &out, g)
	s := out.String()
	assert.Contains(t, s, "[black to play]")
	assert.Contains(t, s, "[O]")
	assert.Contains(t, s, "X")
	assert.Contains(t, s, "moves: 2")

	out.Reset()
	RenderBoard(&UnicodeGlyphs, &out, g)
	assert.Contains(t, out.String(), "●")
}

func TestParseInput(t *testing.T) {
	cases := []struct {
		in  string
		out gomoku.Square
	}{
		{"h8\n", gomoku.Square{Row: 7, Col: 7}},
		{"7 7\n", gomoku.Square{Row: 7, Col: 7}},
		{"0,14", gomoku.Square{Row: 0, Col: 14}},
		{" 3\t4 ", gomoku.Square{Row: 3, Col: 4}},
	}
	for _, tc := range cases {
		got, err := ParseInput(tc.in)
		require.NoError(t, err, "ParseInput(%q)", tc.in)
		assert.Equal(t, tc.out, got, "ParseInput(%q)", tc.in)
	}
	for _, in := range []string{"", "1 2 3", "x y", "zz"} {
		_, err := ParseInput(in)
		assert.Error(t, err, "ParseInput(%q)", in)
	}
}

func TestCLIPlayer(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("nonsense\nh8\n"))
	p := NewCLIPlayer(&out, in)
	g := gomoku.New(gomoku.Config{})
	sq, ok := p.GetMove(g)
	require.True(t, ok)
	assert.Equal(t, gomoku.Square{Row: 7, Col: 7}, sq)
	assert.Contains(t, out.String(), "parse error")

	_, ok = p.GetMove(g)
	assert.False(t, ok, "EOF ends input")
}
