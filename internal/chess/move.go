package chess

// Move is a structured origin/destination request resolved from a piece identity.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form ("e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// MoveRecord describes one accepted half-move.
type MoveRecord struct {
	// 1-based half-move number.
	Ply int

	// Side that moved.
	Colour Colour

	// Identity of the moving piece (the king for castling).
	PieceID string

	// Source and destination of the moving piece.
	From Square
	To   Square

	// The piece captured (empty if none).
	Captured Piece

	// Castle is true for castling moves; Side selects the wing.
	Castle bool
	Side   CastleSide

	// Moves since the last capture after this move was committed.
	MovesSinceCapture int
}

// IsCapture reports whether the move removed an opposing piece.
func (r MoveRecord) IsCapture() bool {
	return !r.Captured.IsEmpty()
}
