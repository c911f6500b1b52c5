package notation

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code     string
		wantCode string
		steps    int
		want     chess.Delta
	}{
		{"U", "U", 2, chess.Delta{Rows: -2}},
		{"d", "D", 1, chess.Delta{Rows: 1}},
		{"left", "L", 3, chess.Delta{Cols: -3}},
		{"SRU", "SRU", 2, chess.Delta{Rows: -2, Cols: 2}},
		{"slantleftdown", "SLD", 1, chess.Delta{Rows: 1, Cols: -1}},
		{"UR", "UR", 5, chess.Delta{Rows: -2, Cols: 1}},
		{"downleft", "DL", 1, chess.Delta{Rows: 2, Cols: -1}},
		{"RD", "RD", 1, chess.Delta{Rows: 1, Cols: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			d, err := Lookup(tt.code)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, d.Code, tt.wantCode)
			testutil.AssertEqual(t, d.Offset(tt.steps), tt.want)
		})
	}
}

func TestLookup_Castle(t *testing.T) {
	d, err := Lookup("castle-right")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, d.Kind, Castle)
	testutil.AssertEqual(t, d.Side, chess.Kingside)
	testutil.AssertFalse(t, d.TakesSteps())

	d, err = Lookup("CL")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, d.Side, chess.Queenside)
}

func TestLookup_Unknown(t *testing.T) {
	for _, code := range []string{"", "X", "UU", "castle"} {
		_, err := Lookup(code)
		testutil.AssertErrorIs(t, err, errors.ErrParseFailure, "code %q", code)
	}
}

// Knight codes must cover exactly the eight knight offsets.
func TestJumpCodesAreKnightOffsets(t *testing.T) {
	seen := make(map[chess.Delta]bool)
	for _, d := range Directions() {
		if d.Kind != Jump {
			continue
		}
		r, c := d.Unit.Rows, d.Unit.Cols
		if r*r+c*c != 5 {
			t.Errorf("%s offset %+v is not a knight move", d.Code, d.Unit)
		}
		seen[d.Unit] = true
	}
	testutil.AssertEqual(t, len(seen), 8)
}

func TestNewCommand(t *testing.T) {
	c, err := NewCommand("wp5", "U", 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, c.PieceID, "WP5")
	testutil.AssertEqual(t, c.String(), "WP5 U 2")

	c, err = NewCommand("WN1", "UR", 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, c.Steps, 1)
	testutil.AssertEqual(t, c.String(), "WN1 UR")

	_, err = NewCommand("WP5", "U", 0)
	testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
	_, err = NewCommand("WP5", "Q", 1)
	testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
}

func mustCommand(t *testing.T, id, code string, steps int) Command {
	t.Helper()
	c, err := NewCommand(id, code, steps)
	if err != nil {
		t.Fatalf("NewCommand(%s, %s, %d): %v", id, code, steps, err)
	}
	return c
}

func TestCommand_Apply(t *testing.T) {
	g := engine.NewGame()

	steps := []struct {
		cmd  Command
		want error
	}{
		{mustCommand(t, "WP5", "U", 2), nil},
		{mustCommand(t, "BP5", "D", 2), nil},
		{mustCommand(t, "WN2", "UL", 1), nil},
		{mustCommand(t, "BN1", "DR", 1), nil},
		{mustCommand(t, "WB2", "SLU", 3), nil},
		{mustCommand(t, "BB2", "SLD", 3), nil},
		{mustCommand(t, "WP1", "L", 1), errors.ErrOutOfBounds},
		{mustCommand(t, "WN1", "CR", 1), errors.ErrShapeInvalid},
		{mustCommand(t, "WKG", "CR", 1), nil},
	}

	for _, s := range steps {
		_, err := s.cmd.Apply(g)
		if s.want == nil {
			testutil.AssertNoError(t, err, s.cmd.String())
			continue
		}
		testutil.AssertErrorIs(t, err, s.want, s.cmd.String())
	}

	board := g.Snapshot()
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "g1")).ID, "WKG")
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "f1")).ID, "WR2")
}

func TestHelp(t *testing.T) {
	testutil.AssertContains(t, Help(), "CL, CR")
}
