package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsPathClear reports whether every square strictly between from and to is
// empty along the rank, file or diagonal joining them. Squares that share
// no line (a knight's offset) have nothing between them.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	d := to.Sub(from)
	if !isAligned(d) {
		return true
	}

	step := chess.Delta{Rows: sign(d.Rows), Cols: sign(d.Cols)}
	for sq := from.Add(step); sq != to; sq = sq.Add(step) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// isAligned reports whether d is a non-zero displacement along a rank,
// file or diagonal.
func isAligned(d chess.Delta) bool {
	if d.IsZero() {
		return false
	}
	return d.Rows == 0 || d.Cols == 0 || abs(d.Rows) == abs(d.Cols)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign maps x to -1, 0 or 1, giving the unit step along one axis.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
