package opt

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/config"
	"github.com/nelhage/gomoku/gomoku"
)

// Search carries the search flags shared by every command. Values
// that are not given on the command line come from the -config file
// and the GOMOKU_* environment.
type Search struct {
	Config    string
	Algorithm string
	Depth     int
	Window    int
	Threads   int
	Debug     int

	Size  int
	First string

	flags *flag.FlagSet
	game  bool
}

func (o *Search) AddFlags(flags *flag.FlagSet) {
	o.flags = flags
	flags.StringVar(&o.Config, "config", "", "YAML file of engine defaults")
	flags.StringVar(&o.Algorithm, "algorithm", "alphabeta", "search algorithm (minimax or alphabeta)")
	flags.IntVar(&o.Depth, "depth", ai.DefaultDepth, "search depth in plies")
	flags.IntVar(&o.Window, "window", gomoku.DefaultWindow, "candidate window around played stones")
	flags.IntVar(&o.Threads, "threads", 1, "parallel workers at the root")
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
}

// AddGameFlags adds -size and -first for commands that start games.
func (o *Search) AddGameFlags(flags *flag.FlagSet) {
	o.game = true
	flags.IntVar(&o.Size, "size", gomoku.DefaultSize, "board size")
	flags.StringVar(&o.First, "first", "black", "color that moves first")
}

// Resolve fills every flag left unset from the config file and the
// environment. Call it after the flags have been parsed.
func (o *Search) Resolve() error {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	if o.flags != nil {
		o.flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	if !set["algorithm"] {
		o.Algorithm = cfg.Algorithm
	}
	if !set["depth"] {
		o.Depth = cfg.Depth
	}
	if !set["window"] {
		o.Window = cfg.Window
	}
	if !set["threads"] {
		o.Threads = cfg.Threads
	}
	if !set["debug"] {
		o.Debug = cfg.Debug
	}
	if o.game {
		if !set["size"] {
			o.Size = cfg.Size
		}
		if !set["first"] {
			o.First = cfg.First
		}
	}
	if _, err := ai.ParseAlgorithm(o.Algorithm); err != nil {
		return err
	}
	if o.game {
		if _, err := o.GameConfig(); err != nil {
			return err
		}
	}
	return nil
}

// BuildConfig returns the search configuration. The board size plays
// no part in it; the signature matches engine config factories.
func (o *Search) BuildConfig(size int) ai.SearchConfig {
	alg, err := ai.ParseAlgorithm(o.Algorithm)
	if err != nil {
		alg = ai.AlphaBeta
	}
	return ai.SearchConfig{
		Algorithm: alg,
		Depth:     o.Depth,
		Window:    o.Window,
		Threads:   o.Threads,
		Debug:     o.Debug,
	}
}

func (o *Search) GameConfig() (gomoku.Config, error) {
	if o.Size < 1 {
		return gomoku.Config{}, fmt.Errorf("bad size: %d", o.Size)
	}
	first, err := gomoku.ParseColor(o.First)
	if err != nil {
		return gomoku.Config{}, err
	}
	return gomoku.Config{Size: o.Size, First: first}, nil
}

// ParsePlayer builds an AI from a description like "rand[:seed]",
// "minimax[:depth]" or "alphabeta[:depth]". base supplies everything
// the description leaves out.
func ParsePlayer(spec string, base ai.SearchConfig) (ai.GomokuPlayer, error) {
	name, arg := spec, ""
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		name, arg = spec[:i], spec[i+1:]
	}
	var n int64
	if arg != "" {
		var err error
		n, err = strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", spec, err)
		}
	}
	if name == "rand" {
		return ai.NewRandom(n), nil
	}
	alg, err := ai.ParseAlgorithm(name)
	if err != nil {
		return nil, fmt.Errorf("unparseable player: %q", spec)
	}
	cfg := base
	cfg.Algorithm = alg
	if arg != "" {
		cfg.Depth = int(n)
	}
	return ai.NewSearch(cfg), nil
}
