package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenLetters maps piece kinds to their (White) FEN letters.
var fenLetters = [chess.NumPieceKinds]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// pieceFromFEN converts a FEN character to a piece kind and colour.
func pieceFromFEN(c rune) (chess.PieceKind, chess.Colour, bool) {
	colour := chess.White
	if unicode.IsLower(c) {
		colour = chess.Black
	}
	upper := byte(unicode.ToUpper(c))
	for kind, letter := range fenLetters {
		if letter != 0 && letter == upper {
			return chess.PieceKind(kind), colour, true
		}
	}
	return chess.NoPiece, colour, false
}

// fenLetter returns the FEN letter of p, lower case for Black.
func fenLetter(p chess.Piece) byte {
	letter := fenLetters[p.Kind]
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN builds a board from the piece placement field of a FEN
// string and assigns piece identities. Each colour must have exactly one
// king. Pieces standing anywhere other than a starting square of their kind
// are marked as having moved.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}
	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(board); err != nil {
		return nil, err
	}
	board.AssignIdentities()
	return board, nil
}

// checkKings rejects placements without exactly one king per colour.
func checkKings(board *chess.Board) error {
	for c := chess.White; c <= chess.Black; c++ {
		kings := 0
		for _, loc := range board.Pieces(c) {
			if loc.Piece.Kind == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return errors.Wrapf(errors.ErrInvalidFEN, "%s has %d kings", c, kings)
		}
	}
	return nil
}

// NewGameFromFEN creates a game from a FEN string. The castling field
// seeds the castling latches, the half-move clock seeds the no-capture
// counter and the en passant field is accepted but ignored.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	parts := strings.Fields(fen)

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	halfmove, fullmove, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}

	ply := (fullmove - 1) * 2
	if toMove == chess.Black {
		ply++
	}
	return newGame(board, toMove, rights, halfmove, ply), nil
}

// parsePiecePositions parses the piece placement field. FEN lists rank 8
// first, which is row 0.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind, colour, ok := pieceFromFEN(c)
			if !ok {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
			}
			if col >= chess.BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", chess.BoardSize-row)
			}
			sq := chess.Sq(row, col)
			board.Set(sq, chess.Piece{Kind: kind, Colour: colour, Moved: !onStartSquare(kind, colour, sq)})
			col++
		}
		if col != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", chess.BoardSize-row, col)
		}
	}
	return nil
}

// onStartSquare reports whether sq is one of the standard starting
// squares of a piece of that kind and colour.
func onStartSquare(kind chess.PieceKind, colour chess.Colour, sq chess.Square) bool {
	home := colour.HomeRow()
	if kind == chess.Pawn {
		return sq.Row == home+colour.Forward()
	}
	if sq.Row != home {
		return false
	}
	switch kind {
	case chess.Rook:
		return sq.Col == chess.QueensideRookCol || sq.Col == chess.KingsideRookCol
	case chess.Knight:
		return sq.Col == 1 || sq.Col == 6
	case chess.Bishop:
		return sq.Col == 2 || sq.Col == 5
	case chess.Queen:
		return sq.Col == 3
	case chess.King:
		return sq.Col == chess.KingStartCol
	}
	return false
}

// parseSideToMove parses the side to move field, defaulting to White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
}

// parseCastlingRights converts the castling availability field into
// latches. A wing missing from the field is latched as if its rook moved.
func parseCastlingRights(parts []string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	for c := chess.White; c <= chess.Black; c++ {
		rights.LeftRookMoved[c] = true
		rights.RightRookMoved[c] = true
	}
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.RightRookMoved[chess.White] = false
		case 'Q':
			rights.LeftRookMoved[chess.White] = false
		case 'k':
			rights.RightRookMoved[chess.Black] = false
		case 'q':
			rights.LeftRookMoved[chess.Black] = false
		default:
			return rights, errors.Wrapf(errors.ErrInvalidFEN, "invalid castling field: %s", parts[2])
		}
	}
	return rights, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (halfmove, fullmove int, err error) {
	fullmove = 1
	if len(parts) >= 5 {
		if halfmove, err = strconv.Atoi(parts[4]); err != nil || halfmove < 0 {
			return 0, 0, errors.Wrapf(errors.ErrInvalidFEN, "invalid halfmove clock: %s", parts[4])
		}
	}
	if len(parts) >= 6 {
		if fullmove, err = strconv.Atoi(parts[5]); err != nil || fullmove < 1 {
			return 0, 0, errors.Wrapf(errors.ErrInvalidFEN, "invalid fullmove number: %s", parts[5])
		}
	}
	return halfmove, fullmove, nil
}

// BoardToFEN converts a game to a FEN string. The en passant field is
// always "-" and the halfmove clock is the no-capture counter.
func BoardToFEN(g *Game) string {
	var sb strings.Builder

	writePiecePositions(&sb, g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, g.rights)
	sb.WriteString(" - ")
	fmt.Fprintf(&sb, "%d %d", g.movesSinceCapture, g.ply/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenLetter(p))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	n := sb.Len()
	flags := []struct {
		colour chess.Colour
		side   chess.CastleSide
		letter byte
	}{
		{chess.White, chess.Kingside, 'K'},
		{chess.White, chess.Queenside, 'Q'},
		{chess.Black, chess.Kingside, 'k'},
		{chess.Black, chess.Queenside, 'q'},
	}
	for _, f := range flags {
		if rights.CanCastle(f.colour, f.side) {
			sb.WriteByte(f.letter)
		}
	}
	if sb.Len() == n {
		sb.WriteByte('-')
	}
}
