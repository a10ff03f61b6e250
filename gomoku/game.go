package gomoku

import "fmt"

const DefaultSize = 15

type Config struct {
	Size  int
	First Color
}

type Result byte

const (
	InProgress Result = iota
	Win
	Draw
)

// Outcome is InProgress, Win with a Winner, or Draw. Once a game leaves
// InProgress its Outcome never changes until Reset.
type Outcome struct {
	Result Result
	Winner Color
}

func (o Outcome) Terminal() bool {
	return o.Result != InProgress
}

func (o Outcome) String() string {
	switch o.Result {
	case InProgress:
		return "in progress"
	case Win:
		return fmt.Sprintf("%s wins", o.Winner)
	case Draw:
		return "draw"
	default:
		panic(fmt.Sprintf("bad result: %d", int(o.Result)))
	}
}

type Game struct {
	cfg Config

	board   *Board
	history []Move
	toMove  Color
	outcome Outcome
}

func New(cfg Config) *Game {
	if cfg.Size == 0 {
		cfg.Size = DefaultSize
	}
	if cfg.First == NoColor {
		cfg.First = Black
	}
	g := &Game{
		cfg:   cfg,
		board: NewBoard(cfg.Size),
	}
	g.Reset(cfg.First)
	return g
}

// Replay builds a game by applying squares in order, alternating
// players from cfg.First.
func Replay(cfg Config, moves []Square) (*Game, error) {
	g := New(cfg)
	for i, sq := range moves {
		if !g.ApplyMove(sq.Row, sq.Col) {
			return nil, fmt.Errorf("move %d (%d,%d): rejected", i+1, sq.Row, sq.Col)
		}
	}
	return g, nil
}

// ApplyMove places a stone for the player to move. It returns false,
// leaving the game untouched, if the square is off the board or
// occupied, or the game is already over.
func (g *Game) ApplyMove(row, col int) bool {
	if !g.board.InBounds(row, col) || g.board.At(row, col) != Empty || g.outcome.Terminal() {
		return false
	}
	g.board.Set(row, col, g.toMove.Stone())
	g.history = append(g.history, Move{Row: row, Col: col, Color: g.toMove})
	if HasWinAt(g.board, row, col) {
		g.outcome = Outcome{Result: Win, Winner: g.toMove}
	} else if g.board.Full() {
		g.outcome = Outcome{Result: Draw}
	}
	g.toMove = g.toMove.Flip()
	return true
}

func (g *Game) Terminal() bool {
	return g.outcome.Terminal()
}

// GameOver is Terminal plus the winner, NoColor on a draw.
func (g *Game) GameOver() (over bool, winner Color) {
	return g.outcome.Terminal(), g.outcome.Winner
}

// Reset empties the board and history and sets the first player.
func (g *Game) Reset(first Color) {
	if first != Black && first != White {
		panic(fmt.Sprintf("Reset: bad color: %x", int(first)))
	}
	g.board.clear()
	g.history = nil
	g.outcome = Outcome{}
	g.cfg.First = first
	g.toMove = first
}

// Rematch resets the game with the other player moving first.
func (g *Game) Rematch() {
	g.Reset(g.cfg.First.Flip())
}

func (g *Game) Board() View {
	return g.board
}

func (g *Game) Size() int {
	return g.cfg.Size
}

func (g *Game) First() Color {
	return g.cfg.First
}

func (g *Game) ToMove() Color {
	return g.toMove
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) MoveNumber() int {
	return len(g.history)
}

// History returns a copy of the moves played so far.
func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

func (g *Game) LastMove() (Move, bool) {
	if len(g.history) == 0 {
		return Move{}, false
	}
	return g.history[len(g.history)-1], true
}

func (g *Game) Clone() *Game {
	out := *g
	out.board = g.board.Clone()
	out.history = g.History()
	return &out
}
