package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
