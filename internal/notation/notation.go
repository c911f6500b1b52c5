// Package notation maps the abbreviated direction codes players type
// ("U", "SLU", "UR", "CR", ...) onto board displacements and castling
// requests, and applies the resulting commands to a game.
//
// "Up" always means towards row 0 (Black's back rank) whichever side is
// moving, so a White pawn advances with U and a Black pawn with D.
package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Kind classifies a direction code.
type Kind int

const (
	Linear Kind = iota // Scaled by a step count
	Jump               // Fixed knight offset, no step count
	Castle             // Castling request, no step count
)

// Direction is one entry of the direction code table.
type Direction struct {
	Code string // Short form, as typed ("SLU")
	Name string // Long form ("slantleftup")
	Kind Kind
	Unit chess.Delta      // Per-step displacement (Linear) or full offset (Jump)
	Side chess.CastleSide // Castle only
}

var directions = []Direction{
	{Code: "U", Name: "up", Kind: Linear, Unit: chess.Delta{Rows: -1}},
	{Code: "D", Name: "down", Kind: Linear, Unit: chess.Delta{Rows: 1}},
	{Code: "L", Name: "left", Kind: Linear, Unit: chess.Delta{Cols: -1}},
	{Code: "R", Name: "right", Kind: Linear, Unit: chess.Delta{Cols: 1}},
	{Code: "SLU", Name: "slantleftup", Kind: Linear, Unit: chess.Delta{Rows: -1, Cols: -1}},
	{Code: "SLD", Name: "slantleftdown", Kind: Linear, Unit: chess.Delta{Rows: 1, Cols: -1}},
	{Code: "SRU", Name: "slantrightup", Kind: Linear, Unit: chess.Delta{Rows: -1, Cols: 1}},
	{Code: "SRD", Name: "slantrightdown", Kind: Linear, Unit: chess.Delta{Rows: 1, Cols: 1}},

	{Code: "UL", Name: "upleft", Kind: Jump, Unit: chess.Delta{Rows: -2, Cols: -1}},
	{Code: "UR", Name: "upright", Kind: Jump, Unit: chess.Delta{Rows: -2, Cols: 1}},
	{Code: "LU", Name: "leftup", Kind: Jump, Unit: chess.Delta{Rows: -1, Cols: -2}},
	{Code: "LD", Name: "leftdown", Kind: Jump, Unit: chess.Delta{Rows: 1, Cols: -2}},
	{Code: "RU", Name: "rightup", Kind: Jump, Unit: chess.Delta{Rows: -1, Cols: 2}},
	{Code: "RD", Name: "rightdown", Kind: Jump, Unit: chess.Delta{Rows: 1, Cols: 2}},
	{Code: "DL", Name: "downleft", Kind: Jump, Unit: chess.Delta{Rows: 2, Cols: -1}},
	{Code: "DR", Name: "downright", Kind: Jump, Unit: chess.Delta{Rows: 2, Cols: 1}},

	{Code: "CL", Name: "castle-left", Kind: Castle, Side: chess.Queenside},
	{Code: "CR", Name: "castle-right", Kind: Castle, Side: chess.Kingside},
}

// lookup indexes directions by lower-cased short and long form.
var lookup = func() map[string]Direction {
	m := make(map[string]Direction, 2*len(directions))
	for _, d := range directions {
		m[strings.ToLower(d.Code)] = d
		m[d.Name] = d
	}
	return m
}()

// Lookup finds a direction by short or long form, ignoring case.
func Lookup(code string) (Direction, error) {
	d, ok := lookup[strings.ToLower(code)]
	if !ok {
		return Direction{}, errors.Wrapf(errors.ErrParseFailure, "unknown direction %q", code)
	}
	return d, nil
}

// Directions returns the code table in display order.
func Directions() []Direction {
	return append([]Direction(nil), directions...)
}

// TakesSteps reports whether the code is followed by a step count.
func (d Direction) TakesSteps() bool {
	return d.Kind == Linear
}

// Offset returns the displacement for the given number of steps. The step
// count is ignored for knight jumps; castling has no displacement.
func (d Direction) Offset(steps int) chess.Delta {
	if d.Kind == Linear {
		return d.Unit.Scale(steps)
	}
	return d.Unit
}

// Command is one parsed move request: a piece identity, a direction and,
// for linear directions, a step count.
type Command struct {
	PieceID string
	Dir     Direction
	Steps   int
}

// NewCommand builds a command, validating the step count.
func NewCommand(id, code string, steps int) (Command, error) {
	d, err := Lookup(code)
	if err != nil {
		return Command{}, err
	}
	if !d.TakesSteps() {
		steps = 1
	} else if steps < 1 {
		return Command{}, errors.Wrapf(errors.ErrParseFailure, "step count must be at least 1, got %d", steps)
	}
	return Command{PieceID: strings.ToUpper(id), Dir: d, Steps: steps}, nil
}

// String renders the command in the form it is typed ("WP5 U 2").
func (c Command) String() string {
	if !c.Dir.TakesSteps() {
		return c.PieceID + " " + c.Dir.Code
	}
	return c.PieceID + " " + c.Dir.Code + " " + strconv.Itoa(c.Steps)
}

// Apply submits the command to the game.
func (c Command) Apply(g *engine.Game) (engine.Outcome, error) {
	if c.Dir.Kind == Castle {
		return g.CastleWith(c.PieceID, c.Dir.Side)
	}
	return g.MoveBy(c.PieceID, c.Dir.Offset(c.Steps))
}

// Help returns the direction summary shown to players.
func Help() string {
	var sb strings.Builder
	sb.WriteString("For Pawns: U, SLU, SRU (White); D, SLD, SRD (Black)\n")
	sb.WriteString("For Knights: UL, UR, LU, LD, RU, RD, DL, DR\n")
	sb.WriteString("For others: U, D, L, R, SLU, SLD, SRU, SRD\n")
	sb.WriteString("For King: CL, CR (in addition to above)\n")
	return sb.String()
}
