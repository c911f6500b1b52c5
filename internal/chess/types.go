// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Prefix returns the identity prefix letter for the colour ('W' or 'B').
func (c Colour) Prefix() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Forward returns the row direction a pawn of this colour advances in.
// Row 0 is Black's back rank, so White moves towards lower rows.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of the colour.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the capture value of a piece kind.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// Piece is a square occupant. The zero Piece (Kind == NoPiece) is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
	Moved  bool   // Latched once the piece leaves its square
	ID     string // Stable identity, e.g. "WP3" or "BKG"
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// String returns the piece identity, or "--" for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "--"
	}
	return p.ID
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// Columns of the rooks and king on their original squares.
	QueensideRookCol = 0
	KingsideRookCol  = BoardSize - 1
	KingStartCol     = 4
)

// Square is a board coordinate. Row 0 is the back rank nearer Black,
// row 7 the one nearer White; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square displaced by d.
func (s Square) Add(d Delta) Square {
	return Square{Row: s.Row + d.Rows, Col: s.Col + d.Cols}
}

// Sub returns the displacement from o to s.
func (s Square) Sub(o Square) Delta {
	return Delta{Rows: s.Row - o.Row, Cols: s.Col - o.Col}
}

// String returns the algebraic name of the square ("e2"), or "??" off-board.
func (s Square) String() string {
	if !s.InBounds() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, BoardSize-s.Row)
}

// ParseSquare converts an algebraic name ("e2") to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}, true
}

// Delta is a displacement between two squares.
type Delta struct {
	Rows int
	Cols int
}

// Scale multiplies the displacement by n.
func (d Delta) Scale(n int) Delta {
	return Delta{Rows: d.Rows * n, Cols: d.Cols * n}
}

// IsZero reports whether the displacement is empty.
func (d Delta) IsZero() bool {
	return d.Rows == 0 && d.Cols == 0
}

// CastleSide selects the wing for castling.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// RookCol returns the original column of the rook on this wing.
func (s CastleSide) RookCol() int {
	if s == Kingside {
		return KingsideRookCol
	}
	return QueensideRookCol
}

// KingTargetCol returns the column the king lands on when castling.
func (s CastleSide) KingTargetCol() int {
	if s == Kingside {
		return 6
	}
	return 2
}

// RookTargetCol returns the column the rook lands on when castling.
func (s CastleSide) RookTargetCol() int {
	if s == Kingside {
		return 5
	}
	return 3
}

// CastlingRights latches, per colour, whether the king and each original
// rook have ever moved. Latches never reset.
type CastlingRights struct {
	KingMoved      [2]bool
	LeftRookMoved  [2]bool // a-file, queenside
	RightRookMoved [2]bool // h-file, kingside
}

// CanCastle reports whether the latches still permit castling on side.
func (r CastlingRights) CanCastle(c Colour, side CastleSide) bool {
	if r.KingMoved[c] {
		return false
	}
	if side == Kingside {
		return !r.RightRookMoved[c]
	}
	return !r.LeftRookMoved[c]
}

// LatchKing records that the king of colour c has moved.
func (r *CastlingRights) LatchKing(c Colour) {
	r.KingMoved[c] = true
}

// LatchRook records that a rook of colour c moved off column col. Only
// the two rook files latch; the row the rook left is not considered.
func (r *CastlingRights) LatchRook(c Colour, col int) {
	switch col {
	case QueensideRookCol:
		r.LeftRookMoved[c] = true
	case KingsideRookCol:
		r.RightRookMoved[c] = true
	}
}
