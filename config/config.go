package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Engine holds the defaults shared by every command that runs a
// search. Values come from an optional YAML file, then GOMOKU_*
// environment variables.
type Engine struct {
	Size      int    `yaml:"size" env:"GOMOKU_SIZE" env-default:"15"`
	First     string `yaml:"first" env:"GOMOKU_FIRST" env-default:"black"`
	Algorithm string `yaml:"algorithm" env:"GOMOKU_ALGORITHM" env-default:"alphabeta"`
	Depth     int    `yaml:"depth" env:"GOMOKU_DEPTH" env-default:"3"`
	Window    int    `yaml:"window" env:"GOMOKU_WINDOW" env-default:"2"`
	Threads   int    `yaml:"threads" env:"GOMOKU_THREADS" env-default:"1"`
	Debug     int    `yaml:"debug" env:"GOMOKU_DEBUG" env-default:"0"`
}

// Load reads path (if non-empty) and the environment.
func Load(path string) (*Engine, error) {
	cfg := &Engine{}
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file %q: %w", path, err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Engine {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
