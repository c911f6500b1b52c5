package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const scholarsMate = "WP5 U 2\nBP5 D 2\nWB2 SLU 3\nBN1 DR\nWQ SRU 4\nBN2 DL\nWQ SLU 2\n"

func playConfig(out, log *bytes.Buffer, format config.OutputFormat) *config.Config {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLog(log).
		WithFormat(format).
		WithVerbosity(config.Summary).
		Build()
}

func TestPlay_Checkmate(t *testing.T) {
	var out, log bytes.Buffer
	err := play(strings.NewReader(scholarsMate+"BP1 D 1\n"), playConfig(&out, &log, config.Text))
	testutil.AssertNoError(t, err)

	testutil.AssertContains(t, out.String(), "*** Welcome to Chess Game! ***")
	testutil.AssertContains(t, out.String(), "*** SUCCESS: You captured BP6 (Pawn)! ***")
	testutil.AssertContains(t, out.String(), "*** CHECKMATE! White wins! ***")
	testutil.AssertContains(t, out.String(), "*** Game Over! ***")
	testutil.AssertContains(t, log.String(), "checkmate, White wins after 7 moves")
	// The game ends before the trailing command is read as a move.
	testutil.AssertFalse(t, strings.Contains(out.String(), "It's not your turn"))
}

func TestPlay_Commands(t *testing.T) {
	input := strings.Join([]string{
		"WP5 U 3",
		"BP1 D 1",
		"foo",
		"moves wp5",
		"moves",
		"fen",
		"",
		"help",
		"quit",
		"WP5 U 2",
	}, "\n")

	var out, log bytes.Buffer
	testutil.AssertNoError(t, play(strings.NewReader(input), playConfig(&out, &log, config.Text)))

	for _, want := range []string{
		"*** ERROR: Invalid move! ***",
		"*** ERROR: It's not your turn! ***",
		"*** ERROR: Could not read that command! ***",
		"WP5 can move to: e4, e3",
		"*** Usage: moves <piece> ***",
		engine.InitialFEN,
		"For Knights: UL, UR, LU, LD, RU, RD, DL, DR",
		"*** Game ended by user. ***",
	} {
		testutil.AssertContains(t, out.String(), want)
	}
	testutil.AssertEqual(t, strings.Count(out.String(), output.TurnBanner(chess.White)), 9)
}

func TestPlay_EndOfInput(t *testing.T) {
	var out, log bytes.Buffer
	testutil.AssertNoError(t, play(strings.NewReader("WP5 U 2"), playConfig(&out, &log, config.Text)))
	testutil.AssertContains(t, out.String(), "*** Black's turn ***")
}

func TestPlay_StartFEN(t *testing.T) {
	var out, log bytes.Buffer
	cfg := playConfig(&out, &log, config.Text)
	cfg.StartFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

	testutil.AssertNoError(t, play(strings.NewReader("WR1 U 7\n"), cfg))
	testutil.AssertContains(t, out.String(), "*** CHECKMATE! White wins! ***")

	cfg.StartFEN = "not a position"
	testutil.AssertErrorIs(t, play(strings.NewReader(""), cfg), errors.ErrInvalidFEN)
}

func TestPlay_JSON(t *testing.T) {
	var out, log bytes.Buffer
	testutil.AssertNoError(t, play(strings.NewReader("WP5 U 2\nWP4 U 2\nquit\n"), playConfig(&out, &log, config.JSON)))

	dec := json.NewDecoder(&out)
	var snaps []output.JSONSnapshot
	for dec.More() {
		var snap output.JSONSnapshot
		testutil.AssertNoError(t, dec.Decode(&snap))
		snaps = append(snaps, snap)
	}
	testutil.AssertEqual(t, len(snaps), 2)
	testutil.AssertEqual(t, snaps[1].ToMove, "black")

	testutil.AssertContains(t, log.String(), "*** ERROR: It's not your turn! ***")
	testutil.AssertContains(t, log.String(), "*** Game ended by user. ***")
}
