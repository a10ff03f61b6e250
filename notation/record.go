package notation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/nelhage/gomoku/gomoku"
)

type Tag struct {
	Name  string
	Value string
}

// Record is a game as text: tag lines followed by numbered moves.
//
//	[Size "15"]
//	[First "black"]
//
//	1. h8 i9
//	2. h9 i10
type Record struct {
	Tags  []Tag
	Moves []gomoku.Square
}

var (
	tagRE    = regexp.MustCompile(`^\[([A-Za-z]+)\s+"([^"]*)"\]$`)
	numberRE = regexp.MustCompile(`^[0-9]+\.$`)
)

// NewRecord captures g's configuration, moves and result.
func NewRecord(g *gomoku.Game, tags ...Tag) *Record {
	r := &Record{}
	r.SetTag("Size", strconv.Itoa(g.Size()))
	r.SetTag("First", g.First().String())
	for _, t := range tags {
		r.SetTag(t.Name, t.Value)
	}
	if o := g.Outcome(); o.Terminal() {
		r.SetTag("Result", FormatOutcome(o))
	}
	for _, m := range g.History() {
		r.Moves = append(r.Moves, m.Square())
	}
	return r
}

func FormatOutcome(o gomoku.Outcome) string {
	switch o.Result {
	case gomoku.Win:
		return o.Winner.String()
	case gomoku.Draw:
		return "draw"
	}
	return ""
}

func (r *Record) FindTag(name string) string {
	for _, t := range r.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

func (r *Record) SetTag(name, value string) {
	for i := range r.Tags {
		if r.Tags[i].Name == name {
			r.Tags[i].Value = value
			return
		}
	}
	r.Tags = append(r.Tags, Tag{Name: name, Value: value})
}

func (r *Record) Config() (gomoku.Config, error) {
	var cfg gomoku.Config
	if s := r.FindTag("Size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size < 1 || size > MaxSize {
			return cfg, fmt.Errorf("bad size: %q", s)
		}
		cfg.Size = size
	}
	if s := r.FindTag("First"); s != "" {
		c, err := gomoku.ParseColor(s)
		if err != nil {
			return cfg, err
		}
		cfg.First = c
	}
	return cfg, nil
}

// Game replays the record's moves.
func (r *Record) Game() (*gomoku.Game, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, err
	}
	return gomoku.Replay(cfg, r.Moves)
}

func (r *Record) Render() string {
	var out strings.Builder
	for _, t := range r.Tags {
		fmt.Fprintf(&out, "[%s \"%s\"]\n", t.Name, t.Value)
	}
	out.WriteString("\n")
	for i, sq := range r.Moves {
		if i%2 == 0 {
			if i > 0 {
				out.WriteString("\n")
			}
			fmt.Fprintf(&out, "%d.", i/2+1)
		}
		out.WriteString(" ")
		out.WriteString(FormatSquare(sq))
	}
	if len(r.Moves) > 0 {
		out.WriteString("\n")
	}
	return out.String()
}

func ParseRecord(r io.Reader) (*Record, error) {
	var rec Record
	scan := bufio.NewScanner(r)
	lineno := 0
	for scan.Scan() {
		lineno++
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			groups := tagRE.FindStringSubmatch(line)
			if groups == nil {
				return nil, fmt.Errorf("line %d: malformed tag: %q", lineno, line)
			}
			rec.Tags = append(rec.Tags, Tag{Name: groups[1], Value: groups[2]})
			continue
		}
		for _, w := range strings.Fields(line) {
			if numberRE.MatchString(w) {
				continue
			}
			sq, err := ParseSquare(w)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			rec.Moves = append(rec.Moves, sq)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRecord(f)
}
