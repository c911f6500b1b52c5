package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// JSONPiece is one living piece.
type JSONPiece struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Colour string `json:"colour"`
	Square string `json:"square"`
	Moved  bool   `json:"moved,omitempty"`
}

// JSONMove is one accepted move from the game history.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Colour   string `json:"colour"`
	Piece    string `json:"piece"`
	From     string `json:"from"`
	To       string `json:"to"`
	Captured string `json:"captured,omitempty"`
	Castle   string `json:"castle,omitempty"`
}

// JSONSnapshot is the state of a game.
type JSONSnapshot struct {
	FEN               string      `json:"fen"`
	ToMove            string      `json:"toMove"`
	Status            string      `json:"status"`
	Result            string      `json:"result"`
	Ply               int         `json:"ply"`
	MovesSinceCapture int         `json:"movesSinceCapture"`
	Pieces            []JSONPiece `json:"pieces"`
	Captured          []string    `json:"captured,omitempty"`
	LegalMoves        []string    `json:"legalMoves,omitempty"`
	Moves             []JSONMove  `json:"moves,omitempty"`
}

// JSONStep is one replayed script line.
type JSONStep struct {
	Line     int    `json:"line"`
	Command  string `json:"command"`
	Accepted bool   `json:"accepted"`
	Result   string `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONReport is the outcome of replaying one script.
type JSONReport struct {
	Name        string     `json:"name"`
	Accepted    int        `json:"accepted"`
	Rejected    int        `json:"rejected"`
	Skipped     int        `json:"skipped,omitempty"`
	ParseErrors []string   `json:"parseErrors,omitempty"`
	Result      string     `json:"result"`
	FEN         string     `json:"fen"`
	DuplicateOf string     `json:"duplicateOf,omitempty"`
	Steps       []JSONStep `json:"steps,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// SnapshotToJSON converts a game to its JSON snapshot. Legal moves are
// included when withLegalMoves is set and the game is not over.
func SnapshotToJSON(g *engine.Game, withLegalMoves bool) *JSONSnapshot {
	board := g.Snapshot()
	snap := &JSONSnapshot{
		FEN:               engine.BoardToFEN(g),
		ToMove:            colourName(g.ToMove()),
		Status:            g.Result().Status.String(),
		Result:            g.Result().String(),
		Ply:               g.Ply(),
		MovesSinceCapture: g.MovesSinceCapture(),
	}

	for c := chess.White; c <= chess.Black; c++ {
		for _, loc := range board.Pieces(c) {
			snap.Pieces = append(snap.Pieces, JSONPiece{
				ID:     loc.Piece.ID,
				Kind:   strings.ToLower(loc.Piece.Kind.String()),
				Colour: colourName(c),
				Square: loc.Square.String(),
				Moved:  loc.Piece.Moved,
			})
		}
		for _, p := range g.Captured(c) {
			snap.Captured = append(snap.Captured, p.ID)
		}
	}

	if withLegalMoves {
		for _, m := range g.LegalMoves() {
			snap.LegalMoves = append(snap.LegalMoves, board.Get(m.From).ID+" "+m.String())
		}
	}

	for _, rec := range g.History() {
		snap.Moves = append(snap.Moves, moveToJSON(rec))
	}
	return snap
}

func moveToJSON(rec chess.MoveRecord) JSONMove {
	m := JSONMove{
		Ply:    rec.Ply,
		Colour: colourName(rec.Colour),
		Piece:  rec.PieceID,
		From:   rec.From.String(),
		To:     rec.To.String(),
	}
	if rec.IsCapture() {
		m.Captured = rec.Captured.ID
	}
	if rec.Castle {
		m.Castle = rec.Side.String()
	}
	return m
}

// ReportToJSON converts a replay report. Steps are included when withSteps
// is set.
func ReportToJSON(r *processing.Report, withSteps bool) *JSONReport {
	jr := &JSONReport{
		Name:        r.Name,
		Accepted:    r.Accepted,
		Rejected:    r.Rejected,
		Skipped:     r.Skipped,
		Result:      r.Final.String(),
		FEN:         r.FEN,
		DuplicateOf: r.DuplicateOf,
	}
	for _, err := range r.ParseErrors {
		jr.ParseErrors = append(jr.ParseErrors, err.Error())
	}
	if !withSteps {
		return jr
	}
	for _, s := range r.Steps {
		js := JSONStep{Line: s.Line, Command: s.Command.String(), Accepted: s.Accepted}
		if s.Accepted {
			js.Result = s.Result.String()
		} else {
			js.Error = s.Err.Error()
		}
		jr.Steps = append(jr.Steps, js)
	}
	return jr
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
