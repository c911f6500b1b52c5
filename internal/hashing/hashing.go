// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Zobrist keys. The tables are filled from a fixed seed so hashes are
// stable across runs.
var (
	pieceKeys   [2][chess.NumPieceKinds][chess.BoardSize][chess.BoardSize]uint64
	blackToMove uint64
	castleKeys  [2][2]uint64
)

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for row := range pieceKeys[c][k] {
				for col := range pieceKeys[c][k][row] {
					pieceKeys[c][k][row][col] = next()
				}
			}
		}
	}
	blackToMove = next()
	for c := range castleKeys {
		for s := range castleKeys[c] {
			castleKeys[c][s] = next()
		}
	}
}

// Hash returns the Zobrist hash of a position. Piece identities and moved
// flags are not part of the hash; castling availability is.
func Hash(board *chess.Board, toMove chess.Colour, rights chess.CastlingRights) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			h ^= pieceKeys[p.Colour][p.Kind][row][col]
		}
	}
	if toMove == chess.Black {
		h ^= blackToMove
	}
	for c := chess.White; c <= chess.Black; c++ {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if rights.CanCastle(c, side) {
				h ^= castleKeys[c][side]
			}
		}
	}
	return h
}

// HashGame returns the hash of the game's current position.
func HashGame(g *engine.Game) uint64 {
	board := g.Snapshot()
	return Hash(&board, g.ToMove(), g.Rights())
}

// Signature identifies the final position of a replayed game.
type Signature struct {
	// Name is the script or game the position came from
	Name string
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Ply is the number of half-moves played to reach it
	Ply int
}

// SignatureOf builds the signature of a game's current position.
func SignatureOf(name string, g *engine.Game) Signature {
	return Signature{Name: name, Hash: HashGame(g), Ply: g.Ply()}
}

// DuplicateDetector tracks final positions already seen. It is not safe for
// concurrent use.
type DuplicateDetector struct {
	// hashTable stores seen signatures by hash
	hashTable map[uint64][]Signature
	// exactMatch also requires the same number of half-moves
	exactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits the number of stored signatures (0 = unlimited)
	maxCapacity int
	// count is the number of stored signatures
	count int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks whether sig matches a position already seen. On a
// match it returns the earlier signature and true; otherwise sig is stored
// (capacity permitting) and the zero Signature and false are returned.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (Signature, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}

	if d.IsFull() {
		return Signature{}, false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.count++
	return Signature{}, false
}

// signaturesMatch checks if two signatures describe the same position.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if d.exactMatch && a.Ply != b.Ply {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.count = 0
}
