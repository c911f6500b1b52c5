package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pieceRule holds the pure per-kind functions of the piece catalog.
type pieceRule struct {
	// shape reports geometric legality of from->to, ignoring obstruction
	// between the squares. Pawns consult the board for occupancy.
	shape func(b *chess.Board, p chess.Piece, from, to chess.Square) bool

	// attacks reports whether a piece on from threatens to, ignoring
	// obstruction. It differs from shape only for pawns.
	attacks func(p chess.Piece, from, to chess.Square) bool

	// moves enumerates reachable squares ignoring check.
	moves func(b *chess.Board, p chess.Piece, from chess.Square) []chess.Square

	// jumps exempts the piece from the path obstruction check.
	jumps bool
}

var (
	knightOffsets = []chess.Delta{
		{Rows: -2, Cols: -1}, {Rows: -2, Cols: 1}, {Rows: -1, Cols: -2}, {Rows: -1, Cols: 2},
		{Rows: 1, Cols: -2}, {Rows: 1, Cols: 2}, {Rows: 2, Cols: -1}, {Rows: 2, Cols: 1},
	}
	straightDirs = []chess.Delta{{Rows: -1}, {Rows: 1}, {Cols: -1}, {Cols: 1}}
	diagonalDirs = []chess.Delta{
		{Rows: -1, Cols: -1}, {Rows: -1, Cols: 1}, {Rows: 1, Cols: -1}, {Rows: 1, Cols: 1},
	}
	allDirs = append(append([]chess.Delta{}, straightDirs...), diagonalDirs...)
)

// catalog is the dispatch table indexed by piece kind.
var catalog [chess.NumPieceKinds]pieceRule

func init() {
	catalog = [chess.NumPieceKinds]pieceRule{
		chess.Pawn: {
			shape:   pawnShape,
			attacks: pawnAttacks,
			moves:   pawnMoves,
		},
		chess.Knight: {
			shape:   geometric(isKnightShape),
			attacks: geometricAttack(isKnightShape),
			moves:   stepMoves(knightOffsets),
			jumps:   true,
		},
		chess.Bishop: {
			shape:   geometric(isDiagonal),
			attacks: geometricAttack(isDiagonal),
			moves:   slideMoves(diagonalDirs),
		},
		chess.Rook: {
			shape:   geometric(isStraight),
			attacks: geometricAttack(isStraight),
			moves:   slideMoves(straightDirs),
		},
		chess.Queen: {
			shape:   geometric(isQueenShape),
			attacks: geometricAttack(isQueenShape),
			moves:   slideMoves(allDirs),
		},
		chess.King: {
			shape:   geometric(isKingShape),
			attacks: geometricAttack(isKingShape),
			moves:   stepMoves(allDirs),
		},
	}
}

// ruleFor returns the catalog entry for kind. The kind set is closed, so
// any non-piece kind yields a rule that accepts nothing.
func ruleFor(kind chess.PieceKind) pieceRule {
	if kind <= chess.NoPiece || kind >= chess.NumPieceKinds {
		return pieceRule{
			shape:   func(*chess.Board, chess.Piece, chess.Square, chess.Square) bool { return false },
			attacks: func(chess.Piece, chess.Square, chess.Square) bool { return false },
			moves:   func(*chess.Board, chess.Piece, chess.Square) []chess.Square { return nil },
		}
	}
	return catalog[kind]
}

// ShapeIsValid reports whether the piece on from may move to to by its
// geometry alone, ignoring pieces in between.
func ShapeIsValid(board *chess.Board, from, to chess.Square) bool {
	p := board.Get(from)
	if p.IsEmpty() || !from.InBounds() || !to.InBounds() {
		return false
	}
	return ruleFor(p.Kind).shape(board, p, from, to)
}

// PossibleMoves enumerates every square the piece on from can reach,
// ignoring whether the move would leave its own king in check. Sliding
// pieces stop at the first occupied square in each direction, including
// it only when it holds an opposing piece.
func PossibleMoves(board *chess.Board, from chess.Square) []chess.Square {
	p := board.Get(from)
	if p.IsEmpty() {
		return nil
	}
	return ruleFor(p.Kind).moves(board, p, from)
}

// geometric lifts a displacement predicate into a shape function.
func geometric(fn func(d chess.Delta) bool) func(*chess.Board, chess.Piece, chess.Square, chess.Square) bool {
	return func(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
		return fn(to.Sub(from))
	}
}

// geometricAttack lifts a displacement predicate into an attack function.
func geometricAttack(fn func(d chess.Delta) bool) func(chess.Piece, chess.Square, chess.Square) bool {
	return func(_ chess.Piece, from, to chess.Square) bool {
		return fn(to.Sub(from))
	}
}

func isKnightShape(d chess.Delta) bool {
	r, c := abs(d.Rows), abs(d.Cols)
	return (r == 2 && c == 1) || (r == 1 && c == 2)
}

func isDiagonal(d chess.Delta) bool {
	return abs(d.Rows) == abs(d.Cols) && d.Rows != 0
}

func isStraight(d chess.Delta) bool {
	return (d.Rows == 0) != (d.Cols == 0)
}

func isQueenShape(d chess.Delta) bool {
	return isStraight(d) || isDiagonal(d)
}

func isKingShape(d chess.Delta) bool {
	return max(abs(d.Rows), abs(d.Cols)) == 1
}

// pawnShape allows a single forward step onto an empty square, a double
// step from an unmoved pawn when both squares ahead are empty, or a
// diagonal forward step onto an opposing piece. There is no en passant.
func pawnShape(b *chess.Board, p chess.Piece, from, to chess.Square) bool {
	dir := p.Colour.Forward()
	d := to.Sub(from)

	if d.Cols == 0 {
		if d.Rows == dir {
			return b.IsEmpty(to)
		}
		if d.Rows == 2*dir && !p.Moved {
			return b.IsEmpty(from.Add(chess.Delta{Rows: dir})) && b.IsEmpty(to)
		}
		return false
	}

	if abs(d.Cols) == 1 && d.Rows == dir {
		target := b.Get(to)
		return !target.IsEmpty() && target.Colour != p.Colour
	}
	return false
}

func pawnAttacks(p chess.Piece, from, to chess.Square) bool {
	d := to.Sub(from)
	return d.Rows == p.Colour.Forward() && abs(d.Cols) == 1
}

func pawnMoves(b *chess.Board, p chess.Piece, from chess.Square) []chess.Square {
	var moves []chess.Square
	dir := p.Colour.Forward()

	one := from.Add(chess.Delta{Rows: dir})
	if one.InBounds() && b.IsEmpty(one) {
		moves = append(moves, one)
		two := from.Add(chess.Delta{Rows: 2 * dir})
		if !p.Moved && two.InBounds() && b.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := from.Add(chess.Delta{Rows: dir, Cols: dc})
		if !diag.InBounds() {
			continue
		}
		if target := b.Get(diag); !target.IsEmpty() && target.Colour != p.Colour {
			moves = append(moves, diag)
		}
	}
	return moves
}

// stepMoves builds a move generator for pieces that move by fixed offsets.
func stepMoves(offsets []chess.Delta) func(*chess.Board, chess.Piece, chess.Square) []chess.Square {
	return func(b *chess.Board, p chess.Piece, from chess.Square) []chess.Square {
		var moves []chess.Square
		for _, off := range offsets {
			to := from.Add(off)
			if !to.InBounds() {
				continue
			}
			if target := b.Get(to); target.IsEmpty() || target.Colour != p.Colour {
				moves = append(moves, to)
			}
		}
		return moves
	}
}

// slideMoves builds a move generator for sliding pieces.
func slideMoves(dirs []chess.Delta) func(*chess.Board, chess.Piece, chess.Square) []chess.Square {
	return func(b *chess.Board, p chess.Piece, from chess.Square) []chess.Square {
		var moves []chess.Square
		for _, dir := range dirs {
			for to := from.Add(dir); to.InBounds(); to = to.Add(dir) {
				target := b.Get(to)
				if target.IsEmpty() {
					moves = append(moves, to)
					continue
				}
				if target.Colour != p.Colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
		}
		return moves
	}
}
