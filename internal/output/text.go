// Package output renders boards, move outcomes and replay reports as text
// or JSON.
package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

const boardRule = "  +-----+-----+-----+-----+-----+-----+-----+-----+\n"

// Palette colours piece identities on the text board. A nil Palette
// renders plain text.
type Palette struct {
	pieces [2]*color.Color
}

// NewPalette returns the default colours. Colours are forced on so the
// board is coloured even when the output is not a terminal.
func NewPalette() *Palette {
	white := color.New(color.FgHiWhite, color.Bold)
	black := color.New(color.FgHiRed, color.Bold)
	white.EnableColor()
	black.EnableColor()
	return &Palette{pieces: [2]*color.Color{white, black}}
}

func (p *Palette) piece(pc chess.Piece, s string) string {
	if p == nil {
		return s
	}
	return p.pieces[pc.Colour].Sprint(s)
}

// RenderBoard writes the board as a grid with rank 8 at the top. Each
// occupied cell shows the piece identity.
func RenderBoard(w io.Writer, b *chess.Board, palette *Palette) {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(boardRule)
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d |", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteString("     |")
				continue
			}
			sb.WriteString(palette.piece(p, fmt.Sprintf("%4s", p.ID)))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
		sb.WriteString(boardRule)
	}
	sb.WriteString("     a     b     c     d     e     f     g     h\n\n")
	io.WriteString(w, sb.String())
}

// RenderLivingPieces writes colour's living piece identities.
func RenderLivingPieces(w io.Writer, g *engine.Game, colour chess.Colour) {
	fmt.Fprintf(w, "\n*** %s's alive pieces: ***\n%s\n", colour, strings.Join(g.LivingPieces(colour), ", "))
}

// RenderLegalMoves writes the legal destinations of one piece.
func RenderLegalMoves(w io.Writer, id string, dests []chess.Square) {
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.String()
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "%s has no legal moves\n", id)
		return
	}
	fmt.Fprintf(w, "%s can move to: %s\n", id, strings.Join(names, ", "))
}

// rejectionMessages maps rejection reasons to player-facing messages.
var rejectionMessages = []struct {
	err error
	msg string
}{
	{errors.ErrUnknownPiece, "Piece not found!"},
	{errors.ErrNotYourTurn, "It's not your turn!"},
	{errors.ErrOutOfBounds, "Invalid move - out of bounds!"},
	{errors.ErrShapeInvalid, "Invalid move!"},
	{errors.ErrPathBlocked, "Path blocked!"},
	{errors.ErrDestinationOccupied, "Destination holds your own piece!"},
	{errors.ErrCastlingRightLost, "Cannot castle: king or rook has moved!"},
	{errors.ErrCastlingPathBlocked, "Cannot castle: pieces in the way!"},
	{errors.ErrCastlingPathAttacked, "Cannot castle through check!"},
	{errors.ErrMovesIntoCheck, "Move would leave king in check!"},
	{errors.ErrGameOver, "The game is over!"},
	{errors.ErrParseFailure, "Could not read that command!"},
}

// ErrorMessage returns the message shown for a rejected command.
func ErrorMessage(err error) string {
	for _, m := range rejectionMessages {
		if stderrors.Is(err, m.err) {
			return "*** ERROR: " + m.msg + " ***"
		}
	}
	return "*** ERROR: " + err.Error() + " ***"
}

// OutcomeMessages returns the lines announcing an accepted move: a capture
// notice, then check, mate or draw. An ordinary move yields no lines.
func OutcomeMessages(out engine.Outcome) []string {
	var msgs []string
	if c := out.Record.Captured; !c.IsEmpty() {
		msgs = append(msgs, fmt.Sprintf("*** SUCCESS: You captured %s (%s)! ***", c.ID, c.Kind))
	}
	switch r := out.Result; r.Status {
	case engine.Check:
		msgs = append(msgs, "*** CHECK! ***")
	case engine.Checkmate:
		msgs = append(msgs, "*** CHECK! ***", fmt.Sprintf("*** CHECKMATE! %s wins! ***", r.Colour))
	case engine.Stalemate:
		msgs = append(msgs, "*** STALEMATE! It's a draw! ***")
	case engine.DrawByMoveLimit:
		msgs = append(msgs, fmt.Sprintf("*** DRAW after %d moves without a capture! ***", engine.MoveLimit))
	}
	return msgs
}

// TurnBanner returns the line announcing whose turn it is.
func TurnBanner(colour chess.Colour) string {
	return fmt.Sprintf("*** %s's turn ***", colour)
}
