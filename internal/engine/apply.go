package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move asks the piece with identity id to move to the given square.
//
// A rejected move returns a *errors.MoveError wrapping one of the rejection
// reasons and leaves the game exactly as it was. An accepted move returns
// the Outcome for the opponent: Ongoing, Check, Checkmate, Stalemate or
// DrawByMoveLimit.
func (g *Game) Move(id string, to chess.Square) (Outcome, error) {
	from, err := g.resolve(id)
	if err != nil {
		return Outcome{}, err
	}
	return g.apply(id, from, to)
}

// MoveBy asks the piece with identity id to move by the displacement d.
// A displacement that leaves the board is rejected with ErrOutOfBounds.
func (g *Game) MoveBy(id string, d chess.Delta) (Outcome, error) {
	from, err := g.resolve(id)
	if err != nil {
		return Outcome{}, err
	}
	return g.apply(id, from, from.Add(d))
}

// Castle asks colour to castle on side. Castling is its own transition and
// is never produced by Move.
func (g *Game) Castle(colour chess.Colour, side chess.CastleSide) (Outcome, error) {
	kingFrom, kingTo, rookFrom, rookTo := castleSquares(colour, side)
	kingID := g.board.Get(kingFrom).ID

	if g.IsOver() {
		return Outcome{}, &errors.MoveError{Err: errors.ErrGameOver, PieceID: kingID}
	}
	if colour != g.toMove {
		return Outcome{}, g.reject(errors.ErrNotYourTurn, kingID, &kingFrom, &kingTo)
	}
	if err := ValidateCastle(g.board, g.rights, colour, side); err != nil {
		return Outcome{}, g.reject(err, kingID, &kingFrom, &kingTo)
	}

	king, rook := g.board.Get(kingFrom), g.board.Get(rookFrom)
	king.Moved, rook.Moved = true, true
	g.board.Clear(kingFrom)
	g.board.Clear(rookFrom)
	g.board.Set(kingTo, king)
	g.board.Set(rookTo, rook)

	g.rights.LatchKing(colour)
	g.rights.LatchRook(colour, side.RookCol())
	g.movesSinceCapture++

	return g.commit(chess.MoveRecord{
		Colour:  colour,
		PieceID: king.ID,
		From:    kingFrom,
		To:      kingTo,
		Castle:  true,
		Side:    side,
	}), nil
}

// CastleWith castles the side to move using the king with identity id.
// Naming any piece other than a king is an invalid shape.
func (g *Game) CastleWith(id string, side chess.CastleSide) (Outcome, error) {
	from, err := g.resolve(id)
	if err != nil {
		return Outcome{}, err
	}
	if g.board.Get(from).Kind != chess.King {
		return Outcome{}, g.reject(errors.ErrShapeInvalid, id, &from, nil)
	}
	return g.Castle(g.toMove, side)
}

// apply validates and commits an ordinary move. Validation runs in order:
// bounds, same square, destination colour, shape, path, own-king safety.
func (g *Game) apply(id string, from, to chess.Square) (Outcome, error) {
	if !to.InBounds() {
		return Outcome{}, g.reject(errors.ErrOutOfBounds, id, &from, nil)
	}
	if from == to {
		return Outcome{}, g.reject(errors.ErrShapeInvalid, id, &from, &to)
	}
	if err := ValidateMove(g.board, from, to); err != nil {
		return Outcome{}, g.reject(err, id, &from, &to)
	}
	if WouldBeInCheck(g.board, from, to, g.toMove) {
		return Outcome{}, g.reject(errors.ErrMovesIntoCheck, id, &from, &to)
	}

	piece := g.board.Get(from)
	captured := g.board.Get(to)

	piece.Moved = true
	g.board.Clear(from)
	g.board.Set(to, piece)

	if captured.IsEmpty() {
		g.movesSinceCapture++
	} else {
		g.movesSinceCapture = 0
		g.captured[captured.Colour] = append(g.captured[captured.Colour], captured)
	}

	switch piece.Kind {
	case chess.King:
		g.rights.LatchKing(piece.Colour)
	case chess.Rook:
		// Any rook leaving file 0 or 7 latches that wing, whatever its row.
		g.rights.LatchRook(piece.Colour, from.Col)
	}

	return g.commit(chess.MoveRecord{
		Colour:   piece.Colour,
		PieceID:  piece.ID,
		From:     from,
		To:       to,
		Captured: captured,
	}), nil
}

// commit records a move already applied to the board, evaluates the
// opponent and passes the turn unless the game ended.
func (g *Game) commit(rec chess.MoveRecord) Outcome {
	g.ply++
	rec.Ply = g.ply
	rec.MovesSinceCapture = g.movesSinceCapture
	g.history = append(g.history, rec)
	g.reindex()

	opponent := rec.Colour.Opposite()
	g.result = g.evaluate(opponent)
	if !g.result.Status.IsTerminal() {
		g.toMove = opponent
	}
	return Outcome{Result: g.result, Record: rec}
}
