package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// kindLetters maps the piece letter used in placements to a kind.
var kindLetters = map[byte]chess.PieceKind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// NewBoard builds a board from placements such as "WK e1" or "bq d8": a
// colour letter, a piece letter and a square. Pieces off their usual
// starting squares are not marked as moved; use MarkMoved for that.
// Identities are assigned as for a fresh game. Malformed placements abort
// the test.
func NewBoard(t testing.TB, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, pl := range placements {
		fields := strings.Fields(strings.ToUpper(pl))
		if len(fields) != 2 || len(fields[0]) != 2 {
			t.Fatalf("bad placement %q", pl)
		}
		var colour chess.Colour
		switch fields[0][0] {
		case 'W':
			colour = chess.White
		case 'B':
			colour = chess.Black
		default:
			t.Fatalf("bad colour in placement %q", pl)
		}
		kind, ok := kindLetters[fields[0][1]]
		if !ok {
			t.Fatalf("bad piece in placement %q", pl)
		}
		sq := MustSquare(t, fields[1])
		if !b.IsEmpty(sq) {
			t.Fatalf("square %s placed twice", sq)
		}
		b.Set(sq, chess.Piece{Kind: kind, Colour: colour})
	}
	b.AssignIdentities()
	return b
}

// MarkMoved sets the moved flag on the pieces standing on the given squares.
func MarkMoved(t testing.TB, b *chess.Board, squares ...string) {
	t.Helper()
	for _, name := range squares {
		sq := MustSquare(t, name)
		p := b.Get(sq)
		if p.IsEmpty() {
			t.Fatalf("no piece on %s to mark", name)
		}
		p.Moved = true
		b.Set(sq, p)
	}
}

// MustSquare parses an algebraic square name or aborts the test.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return sq
}
