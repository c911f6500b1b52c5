package session

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/parser"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestRegistry_CreateGetRemove(t *testing.T) {
	r := NewRegistry(2)

	s, err := r.Create()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, strings.Count(s.Name(), "-"), 1)
	testutil.AssertFalse(t, s.Created().IsZero())

	got, err := r.Get(s.Name())
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == s)

	testutil.AssertNoError(t, r.Remove(s.Name()))
	testutil.AssertEqual(t, r.Len(), 0)

	_, err = r.Get(s.Name())
	testutil.AssertErrorIs(t, err, errors.ErrUnknownGame)
	testutil.AssertErrorIs(t, r.Remove(s.Name()), errors.ErrUnknownGame)
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry(3)
	for i := 0; i < 5; i++ {
		_, err := r.Create()
		testutil.AssertNoError(t, err)
	}

	names := r.List()
	testutil.AssertEqual(t, len(names), 5)
	for i := 1; i < len(names); i++ {
		testutil.AssertTrue(t, names[i-1] < names[i], "names not sorted: %v", names)
	}
}

func TestRegistry_CreateFromFEN(t *testing.T) {
	r := NewRegistry(0)

	s, err := r.CreateFromFEN("4k3/8/8/8/8/8/8/4K2R b K - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.ToMove(), chess.Black)
	testutil.AssertEqual(t, s.FEN(), "4k3/8/8/8/8/8/8/4K2R b K - 0 1")

	_, err = r.CreateFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertEqual(t, r.Len(), 1)
}

func TestSession_Play(t *testing.T) {
	r := NewRegistry(2)
	s, err := r.Create()
	testutil.AssertNoError(t, err)

	_, err = s.Move("WP5", testutil.MustSquare(t, "e4"))
	testutil.AssertNoError(t, err)

	cmd, err := parser.ParseCommand("BP5 D 2")
	testutil.AssertNoError(t, err)
	out, err := s.Apply(cmd)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.Result, engine.GameResult{Status: engine.Ongoing})

	_, err = s.Castle(chess.White, chess.Kingside)
	testutil.AssertErrorIs(t, err, errors.ErrCastlingPathBlocked)

	dests, err := s.LegalMovesFor("WB2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(dests), 5)

	board := s.Snapshot()
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "e5")).ID, "BP5")
	testutil.AssertEqual(t, s.Result().Status, engine.Ongoing)
}

func TestSession_GameIsCopy(t *testing.T) {
	r := NewRegistry(2)
	s, err := r.Create()
	testutil.AssertNoError(t, err)

	g := s.Game()
	_, err = g.Move("WP1", testutil.MustSquare(t, "a3"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, s.ToMove(), chess.White)
}

// TestSession_ConcurrentMoves races two goroutines per colour against one
// game. Exactly one move per turn is accepted and the board stays legal.
func TestSession_ConcurrentMoves(t *testing.T) {
	r := NewRegistry(2)
	s, err := r.Create()
	testutil.AssertNoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	try := func(id, sq string) {
		defer wg.Done()
		if _, err := s.Move(id, testutil.MustSquare(t, sq)); err == nil {
			mu.Lock()
			accepted++
			mu.Unlock()
		}
	}

	wg.Add(4)
	go try("WP1", "a3")
	go try("WP2", "b3")
	go try("WP3", "c3")
	go try("WP4", "d3")
	wg.Wait()

	testutil.AssertEqual(t, accepted, 1)
	testutil.AssertEqual(t, s.ToMove(), chess.Black)
}

// TestRegistry_ConcurrentSessions plays independent games in parallel.
func TestRegistry_ConcurrentSessions(t *testing.T) {
	r := NewRegistry(2)
	const games = 8

	var wg sync.WaitGroup
	errs := make(chan error, games)
	for i := 0; i < games; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := r.Create()
			if err != nil {
				errs <- err
				return
			}
			for _, m := range []struct{ id, sq string }{{"WP6", "f3"}, {"BP5", "e5"}, {"WP7", "g4"}, {"BQ", "h4"}} {
				sq, _ := chess.ParseSquare(m.sq)
				if _, err := s.Move(m.id, sq); err != nil {
					errs <- err
					return
				}
			}
			if res := s.Result(); res.Status != engine.Checkmate {
				errs <- fmt.Errorf("%s: result %s, want checkmate", s.Name(), res)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("session: %v", err)
	}
	testutil.AssertEqual(t, r.Len(), games)
}
