package analyze

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/cli"
	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
)

// Analyzer searches one position and prints what it finds. With
// Compare set it runs both algorithms from Base and reports whether
// they agree.
type Analyzer struct {
	Out     io.Writer
	Glyphs  *cli.Glyphs
	Quiet   bool
	Base    ai.SearchConfig
	Compare bool
}

func (a *Analyzer) configs() []ai.SearchConfig {
	if !a.Compare {
		return []ai.SearchConfig{a.Base}
	}
	mm, ab := a.Base, a.Base
	mm.Algorithm = ai.Minimax
	ab.Algorithm = ai.AlphaBeta
	return []ai.SearchConfig{mm, ab}
}

func (a *Analyzer) Analyze(ctx context.Context, g *gomoku.Game) ([]ai.Analysis, error) {
	p := message.NewPrinter(language.English)
	if !a.Quiet {
		cli.RenderBoard(a.Glyphs, a.Out, g)
	}
	if over, winner := g.GameOver(); over {
		if winner == gomoku.NoColor {
			fmt.Fprintln(a.Out, "game over: draw")
		} else {
			fmt.Fprintf(a.Out, "game over: %s wins\n", winner)
		}
		return nil, nil
	}
	fmt.Fprintf(a.Out, "%s to move after %d plies\n", g.ToMove(), g.MoveNumber())

	var out []ai.Analysis
	for _, cfg := range a.configs() {
		s := ai.NewSearch(cfg)
		res, err := s.Analyze(ctx, g)
		if err != nil {
			return out, fmt.Errorf("%s: %w", cfg.Algorithm, err)
		}
		out = append(out, res)
		move := "none"
		if res.Found {
			move = notation.FormatSquare(res.Move.Square())
		}
		p.Fprintf(a.Out, "%-9s depth=%d move=%s score=%+d visited=%d leaves=%d cut=%d time=%s\n",
			s.Config().Algorithm, s.Config().Depth, move, res.Score,
			res.Stats.Visited, res.Stats.Terminal+res.Stats.Evaluated,
			res.Stats.CutNodes, res.Stats.Elapsed)
	}
	if len(out) == 2 {
		if out[0].Found == out[1].Found && out[0].Move == out[1].Move && out[0].Score == out[1].Score {
			fmt.Fprintln(a.Out, "algorithms agree")
		} else {
			fmt.Fprintln(a.Out, "algorithms DISAGREE")
		}
	}
	return out, nil
}
