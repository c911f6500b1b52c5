package processing

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/parser"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const scholarsMate = `# scholar's mate
WP5 U 2
BP5 D 2
WB2 SLU 3
BN1 DR
WQ SRU 4
BN2 DL
WQ SLU 2
BP1 D 1
`

func testConfig(log *bytes.Buffer, verbosity int) *config.Config {
	return config.NewConfigBuilder().WithLog(log).WithVerbosity(verbosity).Build()
}

func mustParse(t *testing.T, text string) *parser.Script {
	t.Helper()
	script, err := parser.ParseScript(strings.NewReader(text), "test.txt")
	testutil.AssertNoError(t, err)
	return script
}

func TestReplay_Checkmate(t *testing.T) {
	var log bytes.Buffer
	report, err := Replay(mustParse(t, scholarsMate), testConfig(&log, config.Silent))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, report.Accepted, 7)
	testutil.AssertEqual(t, report.Rejected, 0)
	testutil.AssertEqual(t, report.Skipped, 1)
	testutil.AssertEqual(t, report.Final, engine.GameResult{Status: engine.Checkmate, Colour: chess.White})
	testutil.AssertEqual(t, len(report.Steps), 7)
	testutil.AssertEqual(t, report.Steps[6].Line, 8)
	testutil.AssertEqual(t, report.Steps[6].Result.Status, engine.Checkmate)
	testutil.AssertEqual(t, report.Hash, hashing.HashGame(report.Game))
	testutil.AssertEqual(t, log.Len(), 0)
}

func TestReplay_Rejections(t *testing.T) {
	script := mustParse(t, `WP5 U 3
BP5 D 2
WR1 U 1
WP5 U 2
WZ9 U 1
`)
	report, err := Replay(script, testConfig(&bytes.Buffer{}, config.Silent))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, report.Accepted, 1)
	testutil.AssertEqual(t, report.Rejected, 4)

	wantErrs := []error{
		errors.ErrShapeInvalid,
		errors.ErrNotYourTurn,
		errors.ErrDestinationOccupied,
		nil,
		errors.ErrUnknownPiece,
	}
	for i, want := range wantErrs {
		step := report.Steps[i]
		if want == nil {
			testutil.AssertTrue(t, step.Accepted, "line %d should be accepted", step.Line)
			continue
		}
		testutil.AssertFalse(t, step.Accepted, "line %d should be rejected", step.Line)
		testutil.AssertErrorIs(t, step.Err, want)
	}
	testutil.AssertEqual(t, report.Game.ToMove(), chess.Black)
}

func TestReplay_StartFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		script  string
		want    engine.Status
		wantErr bool
	}{
		{
			name:   "back rank mate",
			fen:    "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			script: "WR1 U 7\n",
			want:   engine.Checkmate,
		},
		{
			name:   "castle from position",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			script: "WKG CR\nBKG CL\n",
			want:   engine.Ongoing,
		},
		{
			name:    "bad FEN",
			fen:     "8/8/8 w - - 0 1",
			script:  "WKG U\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(&bytes.Buffer{}, config.Silent)
			cfg.StartFEN = tt.fen
			report, err := Replay(mustParse(t, tt.script), cfg)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, report.Rejected, 0)
			testutil.AssertEqual(t, report.Final.Status, tt.want)
		})
	}
}

func TestReplay_Logging(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLines int
	}{
		{"silent", config.Silent, 0},
		{"summary", config.Summary, 1},
		{"moves", config.MoveLog, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			_, err := Replay(mustParse(t, "WP5 U 2\nWP4 U 2\n"), testConfig(&log, tt.verbosity))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, strings.Count(log.String(), "\n"), tt.wantLines)
		})
	}
}

func TestReplayReader_ParseErrors(t *testing.T) {
	text := "WP5 U 2\nBP5 sideways\nBP5 D 2\n"
	report, err := ReplayReader(strings.NewReader(text), "broken.txt", testConfig(&bytes.Buffer{}, config.Silent))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(report.ParseErrors), 1)
	testutil.AssertErrorIs(t, report.ParseErrors[0], errors.ErrParseFailure)
	testutil.AssertEqual(t, report.Accepted, 2)
	testutil.AssertContains(t, report.String(), "1 unparsable")
}

func TestReplayFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mate.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte(scholarsMate), 0o644))

	report, err := ReplayFile(path, testConfig(&bytes.Buffer{}, config.Silent))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, report.Name, path)
	testutil.AssertEqual(t, report.Final.Status, engine.Checkmate)

	_, err = ReplayFile(filepath.Join(dir, "missing.txt"), testConfig(&bytes.Buffer{}, config.Silent))
	testutil.AssertError(t, err)
}

func TestReport_String(t *testing.T) {
	report, err := Replay(mustParse(t, scholarsMate), testConfig(&bytes.Buffer{}, config.Silent))
	testutil.AssertNoError(t, err)
	report.DuplicateOf = "other.txt"

	testutil.AssertEqual(t, report.String(),
		"test.txt: 7 accepted, 0 rejected, 1 skipped; checkmate, White wins (same final position as other.txt)")
}
