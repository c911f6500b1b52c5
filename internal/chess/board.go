package chess

import "strconv"

// Board is an 8x8 grid holding at most one piece per square.
// Squares[row][col]; see Square for the orientation.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the piece order on both back ranks, a-file first.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position,
// Black on rows 0-1 and White on rows 6-7, and assigns piece identities.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = Piece{Kind: backRank[col], Colour: Black}
		b.Squares[1][col] = Piece{Kind: Pawn, Colour: Black}
		b.Squares[6][col] = Piece{Kind: Pawn, Colour: White}
		b.Squares[7][col] = Piece{Kind: backRank[col], Colour: White}
	}
	b.AssignIdentities()
}

// AssignIdentities numbers every piece by scanning rows 0-7, columns 0-7:
// pawns, knights, bishops and rooks get a running number per colour
// ("WP1".."WP8", "BR2"), the first queen is "WQ"/"BQ" and further ones
// "WQ2", and kings are "WKG"/"BKG".
func (b *Board) AssignIdentities() {
	var counts [2][NumPieceKinds]int
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := &b.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			counts[p.Colour][p.Kind]++
			n := counts[p.Colour][p.Kind]
			prefix := string([]byte{p.Colour.Prefix(), p.Kind.Letter()})
			switch p.Kind {
			case King:
				p.ID = prefix + "G"
				if n > 1 {
					p.ID += strconv.Itoa(n)
				}
			case Queen:
				p.ID = prefix
				if n > 1 {
					p.ID += strconv.Itoa(n)
				}
			default:
				p.ID = prefix + strconv.Itoa(n)
			}
		}
	}
}

// Get returns the piece at s, or an empty Piece if s is empty or off the board.
func (b *Board) Get(s Square) Piece {
	if !s.InBounds() {
		return Piece{}
	}
	return b.Squares[s.Row][s.Col]
}

// Set places a piece at s. Off-board squares are ignored.
func (b *Board) Set(s Square, p Piece) {
	if s.InBounds() {
		b.Squares[s.Row][s.Col] = p
	}
}

// Clear empties s.
func (b *Board) Clear(s Square) {
	b.Set(s, Piece{})
}

// IsEmpty reports whether s holds no piece.
func (b *Board) IsEmpty(s Square) bool {
	return b.Get(s).IsEmpty()
}

// Relocate moves whatever occupies from onto to, displacing the occupant
// of to, and returns a closure that restores both squares exactly.
// Relocating a square onto itself is a no-op.
func (b *Board) Relocate(from, to Square) (undo func()) {
	if from == to {
		return func() {}
	}
	moving, displaced := b.Get(from), b.Get(to)
	b.Set(to, moving)
	b.Clear(from)
	return func() {
		b.Set(from, moving)
		b.Set(to, displaced)
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Located pairs a piece with the square it stands on.
type Located struct {
	Piece  Piece
	Square Square
}

// Pieces returns the pieces of colour c in scan order (row 0 first).
func (b *Board) Pieces(c Colour) []Located {
	var out []Located
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == c {
				out = append(out, Located{Piece: p, Square: Sq(row, col)})
			}
		}
	}
	return out
}

// Find returns the square of the piece with the given identity.
func (b *Board) Find(id string) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() && p.ID == id {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// FindKing returns the square of the king of colour c.
func (b *Board) FindKing(c Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; p.Kind == King && p.Colour == c {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// Index maps every piece identity to its square.
func (b *Board) Index() map[string]Square {
	idx := make(map[string]Square, 32)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				idx[p.ID] = Sq(row, col)
			}
		}
	}
	return idx
}
