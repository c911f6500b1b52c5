package session

import (
	"fmt"
	"sort"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// nameAttempts bounds the search for an unused generated name.
const nameAttempts = 100

// Registry maps generated names to sessions.
type Registry struct {
	sessions map[string]*Session
	words    int
	sync.RWMutex
}

// NewRegistry returns an empty registry whose names have the given number
// of words (two if words < 1).
func NewRegistry(words int) *Registry {
	if words < 1 {
		words = 2
	}
	return &Registry{sessions: make(map[string]*Session), words: words}
}

// Create starts a game in the standard position under a fresh name.
func (r *Registry) Create() (*Session, error) {
	return r.add(engine.NewGame())
}

// CreateFromFEN starts a game from a FEN position under a fresh name.
func (r *Registry) CreateFromFEN(fen string) (*Session, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return r.add(g)
}

func (r *Registry) add(g *engine.Game) (*Session, error) {
	r.Lock()
	defer r.Unlock()

	for i := 0; i < nameAttempts; i++ {
		name := petname.Generate(r.words, "-")
		if _, taken := r.sessions[name]; taken {
			continue
		}
		s := newSession(name, g)
		r.sessions[name] = s
		return s, nil
	}
	return nil, fmt.Errorf("no free session name after %d attempts", nameAttempts)
}

// Get returns the session with the given name.
func (r *Registry) Get(name string) (*Session, error) {
	r.RLock()
	defer r.RUnlock()

	s, ok := r.sessions[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownGame, "%q", name)
	}
	return s, nil
}

// List returns the names of all sessions, sorted.
func (r *Registry) List() []string {
	r.RLock()
	defer r.RUnlock()

	names := make([]string, 0, len(r.sessions))
	for name := range r.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove deletes a session.
func (r *Registry) Remove(name string) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.sessions[name]; !ok {
		return errors.Wrapf(errors.ErrUnknownGame, "%q", name)
	}
	delete(r.sessions, name)
	return nil
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.sessions)
}
