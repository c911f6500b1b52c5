// Package engine provides chess move validation, check detection and the
// turn controller that owns a game.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateMove checks that the piece on from may move to to, ignoring
// whether the move leaves its own king in check. It returns nil for a
// pseudo-legal move, otherwise the rejection reason:
//   - ErrUnknownPiece when from is empty
//   - ErrOutOfBounds when either square is off the board
//   - ErrDestinationOccupied when to holds a piece of the mover's colour
//   - ErrShapeInvalid when the piece cannot move with that geometry
//   - ErrPathBlocked when a square strictly between is occupied (knights jump)
func ValidateMove(board *chess.Board, from, to chess.Square) error {
	if !from.InBounds() || !to.InBounds() {
		return errors.ErrOutOfBounds
	}

	p := board.Get(from)
	if p.IsEmpty() {
		return errors.ErrUnknownPiece
	}

	if target := board.Get(to); !target.IsEmpty() && target.Colour == p.Colour {
		return errors.ErrDestinationOccupied
	}

	if !ShapeIsValid(board, from, to) {
		return errors.ErrShapeInvalid
	}
	if !ruleFor(p.Kind).jumps && !IsPathClear(board, from, to) {
		return errors.ErrPathBlocked
	}
	return nil
}

// IsPseudoLegal reports whether the move satisfies shape, path and
// destination rules. It may still leave the mover's king in check.
func IsPseudoLegal(board *chess.Board, from, to chess.Square) bool {
	return ValidateMove(board, from, to) == nil
}

// Attacks reports whether the piece on from threatens to. Unlike
// IsPseudoLegal a pawn threatens its forward diagonals whether or not
// they are occupied, and the colour of any occupant of to is ignored.
func Attacks(board *chess.Board, from, to chess.Square) bool {
	p := board.Get(from)
	if p.IsEmpty() || from == to {
		return false
	}
	rule := ruleFor(p.Kind)
	if !rule.attacks(p, from, to) {
		return false
	}
	return rule.jumps || IsPathClear(board, from, to)
}
