package piskvork

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomoku/ai"
)

func run(t *testing.T, input string) []string {
	t.Helper()
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(input), &out)
	e.ConfigFactory = func(size int) ai.SearchConfig {
		return ai.SearchConfig{Algorithm: ai.AlphaBeta, Depth: 1}
	}
	require.NoError(t, e.Run(context.Background()))
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if !strings.HasPrefix(l, "MESSAGE") {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestStartBegin(t *testing.T) {
	lines := run(t, "START 15\nBEGIN\nEND\n")
	assert.Equal(t, []string{"OK", "7,7"}, lines)
}

func TestTurn(t *testing.T) {
	lines := run(t, "START 15\r\nTURN 7,7\r\nEND\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "OK", lines[0])
	assert.NotEqual(t, "7,7", lines[1])
}

func TestBoardTakesWin(t *testing.T) {
	// our stones run diagonally from 3,3 to 6,6; 2,2 is blocked
	input := `START 15
BOARD
3,3,1
2,2,2
4,4,1
14,0,2
5,5,1
0,14,2
6,6,1
14,14,2
DONE
END
`
	lines := run(t, input)
	assert.Equal(t, []string{"OK", "7,7"}, lines)
}

func TestBoardErrors(t *testing.T) {
	lines := run(t, "START 15\nBOARD\n3,3,1\n4,4,1\nDONE\nEND\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "ERROR"), lines[1])

	lines = run(t, "START 15\nBOARD\n3,3,2\n4,4,1\nDONE\nEND\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "ERROR"), lines[1])
}

func TestErrors(t *testing.T) {
	lines := run(t, "TURN 1,1\nSTART 2\nSTART 15\nTURN 7,7\nTURN 7,7\nFROB\nEND\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "ERROR"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ERROR"), lines[1])
	assert.Equal(t, "OK", lines[2])
	assert.True(t, strings.HasPrefix(lines[4], "ERROR"), lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "UNKNOWN"), lines[5])
}

func TestInfoAndAbout(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader("INFO depth 2\nINFO algorithm minimax\nINFO timeout_turn 1000\nABOUT\n"), &out)
	require.NoError(t, e.Run(context.Background()))
	assert.Contains(t, out.String(), `name="gomoku"`)
	cfg := e.searchConfig()
	assert.Equal(t, 2, cfg.Depth)
	assert.Equal(t, ai.Minimax, cfg.Algorithm)
}
