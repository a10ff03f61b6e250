// Package piskvork implements the Gomocup "piskvork" engine protocol: a
// line-oriented exchange over stdin/stdout in which a tournament manager
// feeds moves as x,y pairs (x is the column) and the engine answers
// with its own.
package piskvork

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/gomoku"
)

const (
	MinSize = 5
	MaxSize = 26

	ownStone      = 1
	opponentStone = 2
)

var (
	ErrNoGame = errors.New("no game started")
	ErrNoMove = errors.New("no move available")
)

type Engine struct {
	ConfigFactory func(size int) ai.SearchConfig

	in  *bufio.Reader
	out io.Writer

	g    *gomoku.Game
	size int
	info map[string]string
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:   bufio.NewReader(in),
		out:  out,
		info: make(map[string]string),
	}
}

// Run serves commands until END or end of input. Protocol errors are
// reported to the manager and do not stop the loop.
func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)
		switch cmd {
		case "START":
			err = e.start(arg)
			if err == nil {
				fmt.Fprintln(e.out, "OK")
			}
		case "RESTART":
			if e.size == 0 {
				err = ErrNoGame
				break
			}
			e.g = gomoku.New(gomoku.Config{Size: e.size})
			fmt.Fprintln(e.out, "OK")
		case "BEGIN":
			err = e.play(ctx)
		case "TURN":
			err = e.turn(ctx, arg)
		case "BOARD":
			err = e.board(ctx)
		case "INFO":
			e.setInfo(arg)
		case "ABOUT":
			fmt.Fprintln(e.out, `name="gomoku", version="1.0", author="nelhage", country="US"`)
		case "END":
			return nil
		default:
			fmt.Fprintf(e.out, "UNKNOWN unsupported command %q\n", cmd)
		}
		if err != nil {
			log.Printf("[piskvork] %s: %v", cmd, err)
			fmt.Fprintf(e.out, "ERROR %s\n", err.Error())
		}
	}
}

func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return strings.ToUpper(line), ""
	}
	return strings.ToUpper(line[:i]), strings.TrimSpace(line[i+1:])
}

func (e *Engine) start(arg string) error {
	size, err := strconv.Atoi(arg)
	if err != nil || size < MinSize || size > MaxSize {
		return fmt.Errorf("unsupported size %q", arg)
	}
	e.size = size
	e.g = gomoku.New(gomoku.Config{Size: size})
	return nil
}

func (e *Engine) setInfo(arg string) {
	kv := strings.SplitN(arg, " ", 2)
	if len(kv) != 2 {
		return
	}
	e.info[strings.ToLower(kv[0])] = strings.TrimSpace(kv[1])
}

func parseXY(s string) (gomoku.Square, []string, error) {
	bits := strings.Split(s, ",")
	if len(bits) < 2 {
		return gomoku.Square{}, nil, fmt.Errorf("bad coordinates %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(bits[0]))
	if err != nil {
		return gomoku.Square{}, nil, fmt.Errorf("bad coordinates %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(bits[1]))
	if err != nil {
		return gomoku.Square{}, nil, fmt.Errorf("bad coordinates %q", s)
	}
	return gomoku.Square{Row: y, Col: x}, bits[2:], nil
}

func (e *Engine) turn(ctx context.Context, arg string) error {
	if e.g == nil {
		return ErrNoGame
	}
	sq, _, err := parseXY(arg)
	if err != nil {
		return err
	}
	if !e.g.ApplyMove(sq.Row, sq.Col) {
		return fmt.Errorf("illegal move %d,%d", sq.Col, sq.Row)
	}
	return e.play(ctx)
}

// board reads x,y,field lines up to DONE. The stones must alternate
// between the two sides, and the engine must be the side to move.
func (e *Engine) board(ctx context.Context) error {
	if e.g == nil {
		return ErrNoGame
	}
	var sqs []gomoku.Square
	var owners []int
	for {
		line, err := e.readLine()
		if err != nil {
			return fmt.Errorf("reading BOARD: %w", err)
		}
		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "DONE") {
			break
		}
		sq, rest, err := parseXY(line)
		if err != nil {
			return err
		}
		owner := ownStone
		if len(rest) > 0 {
			owner, err = strconv.Atoi(strings.TrimSpace(rest[0]))
			if err != nil || (owner != ownStone && owner != opponentStone) {
				return fmt.Errorf("bad stone owner %q", line)
			}
		}
		sqs = append(sqs, sq)
		owners = append(owners, owner)
	}
	for i := 1; i < len(owners); i++ {
		if owners[i] == owners[i-1] {
			return fmt.Errorf("BOARD stones do not alternate at %d,%d", sqs[i].Col, sqs[i].Row)
		}
	}
	if len(owners) > 0 && owners[len(owners)-1] == ownStone {
		return errors.New("BOARD ends with our own stone")
	}
	g, err := gomoku.Replay(gomoku.Config{Size: e.size}, sqs)
	if err != nil {
		return err
	}
	e.g = g
	return e.play(ctx)
}

func (e *Engine) searchConfig() ai.SearchConfig {
	var cfg ai.SearchConfig
	if e.ConfigFactory != nil {
		cfg = e.ConfigFactory(e.size)
	}
	if v, ok := e.info["depth"]; ok {
		if d, err := strconv.Atoi(v); err == nil && d > 0 {
			cfg.Depth = d
		}
	}
	if v, ok := e.info["algorithm"]; ok {
		if a, err := ai.ParseAlgorithm(v); err == nil {
			cfg.Algorithm = a
		}
	}
	return cfg
}

func (e *Engine) play(ctx context.Context) error {
	if e.g == nil {
		return ErrNoGame
	}
	cfg := e.searchConfig()
	a, err := ai.NewSearch(cfg).Analyze(ctx, e.g)
	if err != nil {
		return err
	}
	if !a.Found {
		return ErrNoMove
	}
	if !e.g.ApplyMove(a.Move.Row, a.Move.Col) {
		return fmt.Errorf("engine produced illegal move %d,%d", a.Move.Col, a.Move.Row)
	}
	fmt.Fprintf(e.out, "MESSAGE %s depth %d score %d nodes %d\n",
		cfg.Algorithm, a.Stats.Depth, a.Score, a.Stats.Visited)
	fmt.Fprintf(e.out, "%d,%d\n", a.Move.Col, a.Move.Row)
	return nil
}
