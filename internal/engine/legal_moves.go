package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move for colour, in board scan order.
// Castling is a separate transition and is not listed.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, loc := range board.Pieces(colour) {
		for _, to := range legalDestinations(board, loc.Square, colour) {
			moves = append(moves, chess.Move{From: loc.Square, To: to})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, loc := range board.Pieces(colour) {
		for _, to := range PossibleMoves(board, loc.Square) {
			if !WouldBeInCheck(board, loc.Square, to, colour) {
				return true
			}
		}
	}
	return false
}

// legalDestinations filters the catalog's reachable squares for the piece
// on from down to those that keep colour's king safe.
func legalDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var out []chess.Square
	for _, to := range PossibleMoves(board, from) {
		if !WouldBeInCheck(board, from, to, colour) {
			out = append(out, to)
		}
	}
	return out
}
