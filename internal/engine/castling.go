package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateCastle checks whether colour may castle on side. It returns nil
// when castling is allowed, otherwise:
//   - ErrCastlingRightLost if the king or that rook has ever moved, or
//     either is missing from its original square
//   - ErrCastlingPathBlocked if a square between king and rook is occupied
//   - ErrCastlingPathAttacked if the king starts on, crosses or lands on
//     a square where it would be in check
func ValidateCastle(board *chess.Board, rights chess.CastlingRights, colour chess.Colour, side chess.CastleSide) error {
	if !rights.CanCastle(colour, side) {
		return errors.ErrCastlingRightLost
	}

	row := colour.HomeRow()
	kingSq := chess.Sq(row, chess.KingStartCol)
	rookSq := chess.Sq(row, side.RookCol())

	king := board.Get(kingSq)
	if king.Kind != chess.King || king.Colour != colour || king.Moved {
		return errors.ErrCastlingRightLost
	}
	rook := board.Get(rookSq)
	if rook.Kind != chess.Rook || rook.Colour != colour || rook.Moved {
		return errors.ErrCastlingRightLost
	}

	if !IsPathClear(board, kingSq, rookSq) {
		return errors.ErrCastlingPathBlocked
	}

	target := chess.Sq(row, side.KingTargetCol())
	step := chess.Delta{Cols: sign(target.Col - kingSq.Col)}
	for sq := kingSq; ; sq = sq.Add(step) {
		if WouldBeInCheck(board, kingSq, sq, colour) {
			return errors.ErrCastlingPathAttacked
		}
		if sq == target {
			break
		}
	}
	return nil
}

// castleSquares returns the king and rook origin and destination squares.
func castleSquares(colour chess.Colour, side chess.CastleSide) (kingFrom, kingTo, rookFrom, rookTo chess.Square) {
	row := colour.HomeRow()
	return chess.Sq(row, chess.KingStartCol), chess.Sq(row, side.KingTargetCol()),
		chess.Sq(row, side.RookCol()), chess.Sq(row, side.RookTargetCol())
}
