package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece. A board with no king of that colour is reported as not
// in check rather than failing.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of colour by threatens sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	for _, loc := range board.Pieces(by) {
		if Attacks(board, loc.Square, sq) {
			return true
		}
	}
	return false
}

// WouldBeInCheck speculatively relocates the piece on from to to
// (displacing any occupant), reports whether colour's king is then in
// check, and restores the board before returning on every path.
func WouldBeInCheck(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	undo := board.Relocate(from, to)
	defer undo()
	return IsInCheck(board, colour)
}
