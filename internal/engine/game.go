package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveLimit is the number of half-moves without a capture after which the
// game is drawn.
const MoveLimit = 100

// Status is the controller's state.
type Status int

const (
	Ongoing         Status = iota // Awaiting a move from the side to move
	Check                         // Awaiting a move; the side to move is in check
	Checkmate                     // Terminal; a side has won
	Stalemate                     // Terminal draw
	DrawByMoveLimit               // Terminal draw after MoveLimit quiet half-moves
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Ongoing", "Check", "Checkmate", "Stalemate", "DrawByMoveLimit"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal reports whether no further moves are accepted.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == DrawByMoveLimit
}

// GameResult is the status of the game together with the colour it
// concerns: the side in check for Check, the winner for Checkmate.
// Colour is meaningless for the other statuses.
type GameResult struct {
	Status Status
	Colour chess.Colour
}

// String returns a human-readable description of the result.
func (r GameResult) String() string {
	switch r.Status {
	case Check:
		return r.Colour.String() + " in check"
	case Checkmate:
		return "checkmate, " + r.Colour.String() + " wins"
	case Stalemate:
		return "stalemate"
	case DrawByMoveLimit:
		return "draw by move limit"
	}
	return "ongoing"
}

// Outcome is returned for every accepted move.
type Outcome struct {
	Result GameResult
	Record chess.MoveRecord
}

// Game owns the board, turn order, castling latches and the no-capture
// counter. A Game is not safe for concurrent use; speculative check
// testing mutates the board temporarily, so calls on one Game must be
// serialised (see the session package).
type Game struct {
	board             *chess.Board
	toMove            chess.Colour
	rights            chess.CastlingRights
	movesSinceCapture int
	ply               int
	result            GameResult
	index             map[string]chess.Square
	history           []chess.MoveRecord
	captured          [2][]chess.Piece
}

// NewGame returns a game in the standard starting position, White to move.
func NewGame() *Game {
	return newGame(chess.NewInitialBoard(), chess.White, chess.CastlingRights{}, 0, 0)
}

func newGame(board *chess.Board, toMove chess.Colour, rights chess.CastlingRights, movesSinceCapture, ply int) *Game {
	g := &Game{
		board:             board,
		toMove:            toMove,
		rights:            rights,
		movesSinceCapture: movesSinceCapture,
		ply:               ply,
	}
	g.reindex()
	g.result = g.evaluate(toMove)
	return g
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.board = g.board.Copy()
	c.index = make(map[string]chess.Square, len(g.index))
	for id, sq := range g.index {
		c.index[id] = sq
	}
	c.history = append([]chess.MoveRecord(nil), g.history...)
	for i := range g.captured {
		c.captured[i] = append([]chess.Piece(nil), g.captured[i]...)
	}
	return &c
}

// Snapshot returns a copy of the board for rendering.
func (g *Game) Snapshot() chess.Board {
	return *g.board
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Rights returns the castling latches.
func (g *Game) Rights() chess.CastlingRights {
	return g.rights
}

// MovesSinceCapture returns the half-moves played since the last capture.
func (g *Game) MovesSinceCapture() int {
	return g.movesSinceCapture
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return g.ply
}

// Result returns the current game status.
func (g *Game) Result() GameResult {
	return g.result
}

// IsOver reports whether the game has reached a terminal state.
func (g *Game) IsOver() bool {
	return g.result.Status.IsTerminal()
}

// Locate returns the square of the living piece with the given identity.
func (g *Game) Locate(id string) (chess.Square, bool) {
	sq, ok := g.index[id]
	return sq, ok
}

// LivingPieces returns the identities of colour's pieces in board scan order.
func (g *Game) LivingPieces(colour chess.Colour) []string {
	var ids []string
	for _, loc := range g.board.Pieces(colour) {
		ids = append(ids, loc.Piece.ID)
	}
	return ids
}

// Material returns the summed catalog value of colour's living pieces.
func (g *Game) Material(colour chess.Colour) int {
	total := 0
	for _, loc := range g.board.Pieces(colour) {
		total += loc.Piece.Kind.Value()
	}
	return total
}

// Captured returns colour's pieces that have been captured, oldest first.
func (g *Game) Captured(colour chess.Colour) []chess.Piece {
	return append([]chess.Piece(nil), g.captured[colour]...)
}

// History returns a record of every accepted move.
func (g *Game) History() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), g.history...)
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	if g.IsOver() {
		return nil
	}
	return LegalMoves(g.board, g.toMove)
}

// LegalMovesFor returns the legal destinations of the piece with the given
// identity, sorted by row then column.
func (g *Game) LegalMovesFor(id string) ([]chess.Square, error) {
	from, err := g.resolve(id)
	if err != nil {
		return nil, err
	}
	dests := legalDestinations(g.board, from, g.toMove)
	sort.Slice(dests, func(i, j int) bool {
		if dests[i].Row != dests[j].Row {
			return dests[i].Row < dests[j].Row
		}
		return dests[i].Col < dests[j].Col
	})
	return dests, nil
}

// resolve maps a piece identity to its square, rejecting moves after the
// game ended, unknown identities and pieces of the side not on move.
func (g *Game) resolve(id string) (chess.Square, error) {
	if g.IsOver() {
		return chess.Square{}, &errors.MoveError{Err: errors.ErrGameOver, PieceID: id}
	}
	from, ok := g.index[id]
	if !ok {
		return chess.Square{}, g.reject(errors.ErrUnknownPiece, id, nil, nil)
	}
	if g.board.Get(from).Colour != g.toMove {
		return chess.Square{}, g.reject(errors.ErrNotYourTurn, id, &from, nil)
	}
	return from, nil
}

// reject builds the error returned for a refused move.
func (g *Game) reject(reason error, id string, from, to *chess.Square) error {
	e := &errors.MoveError{Err: reason, PieceID: id, Ply: g.ply + 1}
	if from != nil {
		e.From = from.String()
	}
	if to != nil && to.InBounds() {
		e.To = to.String()
	}
	return e
}

// reindex rebuilds the identity-to-square index after a commit.
func (g *Game) reindex() {
	g.index = g.board.Index()
}

// evaluate computes the state of opponent after mover's move. A side in
// check with no legal move is mated; without check it is stalemated. The
// move limit applies to any position that is not already terminal.
func (g *Game) evaluate(opponent chess.Colour) GameResult {
	mover := opponent.Opposite()
	var result GameResult

	if IsInCheck(g.board, opponent) {
		if HasLegalMoves(g.board, opponent) {
			result = GameResult{Status: Check, Colour: opponent}
		} else {
			result = GameResult{Status: Checkmate, Colour: mover}
		}
	} else if !HasLegalMoves(g.board, opponent) {
		result = GameResult{Status: Stalemate}
	}

	if !result.Status.IsTerminal() && g.movesSinceCapture >= MoveLimit {
		result = GameResult{Status: DrawByMoveLimit}
	}
	return result
}
