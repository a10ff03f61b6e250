package opt

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/gomoku"
)

func parse(t *testing.T, args ...string) *Search {
	var o Search
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(fs)
	o.AddGameFlags(fs)
	require.NoError(t, fs.Parse(args))
	return &o
}

func TestResolveDefaults(t *testing.T) {
	o := parse(t)
	require.NoError(t, o.Resolve())
	assert.Equal(t, ai.SearchConfig{
		Algorithm: ai.AlphaBeta,
		Depth:     3,
		Window:    2,
		Threads:   1,
	}, o.BuildConfig(15))
	cfg, err := o.GameConfig()
	require.NoError(t, err)
	assert.Equal(t, gomoku.Config{Size: 15, First: gomoku.Black}, cfg)
}

func TestFlagsBeatConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yml")
	require.NoError(t, os.WriteFile(path,
		[]byte("algorithm: minimax\ndepth: 4\nsize: 9\nfirst: white\n"), 0644))

	o := parse(t, "-config", path, "-depth", "2")
	require.NoError(t, o.Resolve())
	sc := o.BuildConfig(9)
	assert.Equal(t, ai.Minimax, sc.Algorithm)
	assert.Equal(t, 2, sc.Depth)

	cfg, err := o.GameConfig()
	require.NoError(t, err)
	assert.Equal(t, gomoku.Config{Size: 9, First: gomoku.White}, cfg)
}

func TestResolveRejects(t *testing.T) {
	assert.Error(t, parse(t, "-algorithm", "mcts").Resolve())
	assert.Error(t, parse(t, "-first", "red").Resolve())
	assert.Error(t, parse(t, "-size", "0").Resolve())
}

func TestParsePlayer(t *testing.T) {
	base := ai.SearchConfig{Algorithm: ai.AlphaBeta, Depth: 3, Threads: 2}

	p, err := ParsePlayer("minimax:2", base)
	require.NoError(t, err)
	sc := p.(*ai.SearchAI).Config()
	assert.Equal(t, ai.Minimax, sc.Algorithm)
	assert.Equal(t, 2, sc.Depth)
	assert.Equal(t, 2, sc.Threads)

	p, err = ParsePlayer("alphabeta", base)
	require.NoError(t, err)
	assert.Equal(t, 3, p.(*ai.SearchAI).Config().Depth)

	p, err = ParsePlayer("rand:7", base)
	require.NoError(t, err)
	assert.IsType(t, &ai.RandomAI{}, p)

	_, err = ParsePlayer("minimax:x", base)
	assert.Error(t, err)
	_, err = ParsePlayer("mcts", base)
	assert.Error(t, err)
}
