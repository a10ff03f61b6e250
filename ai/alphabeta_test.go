package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/gomokutest"
)

// playout plays n random candidate moves on a fresh board, stopping
// early if the game ends.
func playout(size int, n int, seed int64) *gomoku.Game {
	g := gomoku.New(gomoku.Config{Size: size})
	r := NewRandom(seed)
	for i := 0; i < n && !g.Terminal(); i++ {
		m, ok := r.GetMove(context.Background(), g)
		if !ok {
			break
		}
		g.ApplyMove(m.Row, m.Col)
	}
	return g
}

func analyze(t *testing.T, cfg SearchConfig, g *gomoku.Game) Analysis {
	t.Helper()
	a, err := NewSearch(cfg).Analyze(context.Background(), g)
	require.NoError(t, err)
	return a
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	positions := []*gomoku.Game{
		gomoku.New(gomoku.Config{Size: 9}),
		gomokutest.Game(9, "e5"),
		gomokutest.Game(9, "e5 d4 f5 d5 g5"),
		gomokutest.Game(9, "a1 b2 a2 b3 a3 b4 a4"),
		gomokutest.Game(9, "c3 c4 d4 d5 e5 e6 f6"),
		gomokutest.Game(15, blackToWin),
	}
	for seed := int64(1); seed <= 6; seed++ {
		positions = append(positions, playout(9, 6+int(seed), seed))
	}
	for i, g := range positions {
		if g.Terminal() {
			continue
		}
		for d := 1; d <= 3; d++ {
			if g.Size() > 9 && d > 2 {
				continue
			}
			mm := analyze(t, SearchConfig{Algorithm: Minimax, Depth: d}, g)
			ab := analyze(t, SearchConfig{Algorithm: AlphaBeta, Depth: d}, g)
			assert.Equal(t, mm.Found, ab.Found, "position %d depth %d", i, d)
			assert.Equal(t, mm.Score, ab.Score, "position %d depth %d", i, d)
			assert.Equal(t, mm.Move, ab.Move, "position %d depth %d", i, d)
			assert.LessOrEqual(t, ab.Stats.Visited, mm.Stats.Visited, "position %d depth %d", i, d)
			assert.Zero(t, mm.Stats.CutNodes)
		}
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	g := gomokutest.Game(9, "e5 d4 f5 d5 g5")
	mm := analyze(t, SearchConfig{Algorithm: Minimax, Depth: 3}, g)
	ab := analyze(t, SearchConfig{Algorithm: AlphaBeta, Depth: 3}, g)
	assert.NotZero(t, ab.Stats.CutNodes)
	assert.Less(t, ab.Stats.Evaluated+ab.Stats.Terminal, mm.Stats.Evaluated+mm.Stats.Terminal)
	assert.Equal(t, mm.Move, ab.Move)
}

func TestParallelMatchesSerial(t *testing.T) {
	g := gomokutest.Game(9, "e5 d4 f5 d5 g5 c3")
	for _, alg := range []Algorithm{Minimax, AlphaBeta} {
		serial := analyze(t, SearchConfig{Algorithm: alg, Depth: 2}, g)
		for _, threads := range []int{2, 4, 16} {
			par := analyze(t, SearchConfig{Algorithm: alg, Depth: 2, Threads: threads}, g)
			assert.Equal(t, serial.Move, par.Move, "%s threads=%d", alg, threads)
			assert.Equal(t, serial.Score, par.Score, "%s threads=%d", alg, threads)
			assert.Equal(t, serial.Stats.Visited, par.Stats.Visited, "%s threads=%d", alg, threads)
			assert.Equal(t, serial.Stats.Evaluated, par.Stats.Evaluated, "%s threads=%d", alg, threads)
		}
	}
}

func TestRandomPlaysCandidates(t *testing.T) {
	g := gomokutest.Game(15, "h8 h9")
	cands := make(map[gomoku.Square]bool)
	for _, sq := range gomoku.CandidateMoves(g.Board(), g.History(), gomoku.DefaultWindow) {
		cands[sq] = true
	}
	r := NewRandom(42)
	for i := 0; i < 20; i++ {
		m, ok := r.GetMove(context.Background(), g)
		require.True(t, ok)
		assert.True(t, cands[m.Square()], "%v", m)
		assert.Equal(t, gomoku.Black, m.Color)
	}
}
