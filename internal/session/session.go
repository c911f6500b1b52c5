// Package session hosts many games at once. Every game lives behind its
// own mutex, so calls on one game are serialised while different games
// proceed independently.
package session

import (
	"sync"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Session is one hosted game.
type Session struct {
	name    string
	created time.Time

	mu   sync.Mutex
	game *engine.Game
}

func newSession(name string, g *engine.Game) *Session {
	return &Session{name: name, created: time.Now(), game: g}
}

// Name returns the session's registry key.
func (s *Session) Name() string {
	return s.name
}

// Created returns when the session was created.
func (s *Session) Created() time.Time {
	return s.created
}

// Move forwards to engine.Game.Move.
func (s *Session) Move(id string, to chess.Square) (engine.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Move(id, to)
}

// Castle forwards to engine.Game.Castle.
func (s *Session) Castle(colour chess.Colour, side chess.CastleSide) (engine.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Castle(colour, side)
}

// Apply submits a parsed command.
func (s *Session) Apply(cmd notation.Command) (engine.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cmd.Apply(s.game)
}

// Snapshot returns a copy of the board.
func (s *Session) Snapshot() chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Result returns the current game status.
func (s *Session) Result() engine.GameResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Result()
}

// ToMove returns the colour whose turn it is.
func (s *Session) ToMove() chess.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ToMove()
}

// LegalMovesFor forwards to engine.Game.LegalMovesFor.
func (s *Session) LegalMovesFor(id string) ([]chess.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMovesFor(id)
}

// FEN returns the current position as a FEN string.
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.BoardToFEN(s.game)
}

// Game returns an independent copy of the game for read-only use such as
// rendering.
func (s *Session) Game() *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}
