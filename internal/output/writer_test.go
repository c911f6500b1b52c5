package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func testConfig(format config.OutputFormat, verbosity int) *config.Config {
	return config.NewConfigBuilder().
		WithFormat(format).
		WithLog(&bytes.Buffer{}).
		WithVerbosity(verbosity).
		Build()
}

func testReport(t *testing.T, script string) *processing.Report {
	t.Helper()
	r, err := processing.ReplayReader(strings.NewReader(script), "game.txt", testConfig(config.Text, config.Silent))
	testutil.AssertNoError(t, err)
	return r
}

func afterE4(t *testing.T) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	_, err := g.Move("WP5", testutil.MustSquare(t, "e4"))
	testutil.AssertNoError(t, err)
	return g
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	_, isText := NewWriter(&buf, testConfig(config.Text, config.Silent)).(*TextWriter)
	testutil.AssertTrue(t, isText)

	_, isJSON := NewWriter(&buf, testConfig(config.JSON, config.Silent)).(*JSONWriter)
	testutil.AssertTrue(t, isJSON)
}

func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(config.Text, config.Silent)
	tw := NewTextWriter(&buf, cfg)

	testutil.AssertNoError(t, tw.WriteGame(afterE4(t)))

	out := buf.String()
	testutil.AssertContains(t, out, "4 |     |     |     |     | WP5 |")
	testutil.AssertContains(t, out, "*** White's alive pieces: ***")
	testutil.AssertContains(t, out, "*** Black's alive pieces: ***\nBR1, BN1")
	testutil.AssertTrue(t, strings.Index(out, "White's alive") < strings.Index(out, "Black's alive"),
		"the side that just moved is listed first")

	buf.Reset()
	cfg.Output.ShowLivingPieces = false
	testutil.AssertNoError(t, tw.WriteGame(afterE4(t)))
	testutil.AssertFalse(t, strings.Contains(buf.String(), "alive pieces"))
}

func TestTextWriter_WriteReport(t *testing.T) {
	report := testReport(t, "WP5 U 2\nWP5 U 2\nBP5 sideways\n")

	tests := []struct {
		name      string
		verbosity int
		want      []string
		wantLines int
	}{
		{
			name:      "summary",
			verbosity: config.Summary,
			want:      []string{"game.txt: 1 accepted, 1 rejected, 1 unparsable; ongoing"},
			wantLines: 1,
		},
		{
			name:      "moves",
			verbosity: config.MoveLog,
			want:      []string{"  line 2: WP5 U 2: ", "not your turn", "game.txt:3:"},
			wantLines: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tw := NewTextWriter(&buf, testConfig(config.Text, tt.verbosity))
			testutil.AssertNoError(t, tw.WriteReport(report))
			for _, want := range tt.want {
				testutil.AssertContains(t, buf.String(), want)
			}
			testutil.AssertEqual(t, strings.Count(buf.String(), "\n"), tt.wantLines)
		})
	}
}

func TestTextWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, testConfig(config.Text, config.Silent))

	testutil.AssertNoError(t, tw.WriteError("lost.txt", fmt.Errorf("no such file")))
	testutil.AssertEqual(t, buf.String(), "lost.txt: no such file\n")
	testutil.AssertNoError(t, tw.Flush())
	testutil.AssertNoError(t, tw.Close())
}

func TestJSONWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(config.JSON, config.Silent)
	cfg.Output.ShowLegalMoves = true
	jw := NewJSONWriter(&buf, cfg)

	testutil.AssertNoError(t, jw.WriteGame(afterE4(t)))

	var snap JSONSnapshot
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &snap))
	testutil.AssertEqual(t, snap.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 1 1")
	testutil.AssertEqual(t, snap.ToMove, "black")
	testutil.AssertEqual(t, snap.Status, "Ongoing")
	testutil.AssertEqual(t, snap.Ply, 1)
	testutil.AssertEqual(t, len(snap.Pieces), 32)
	testutil.AssertEqual(t, len(snap.LegalMoves), 20)
	testutil.AssertEqual(t, snap.Moves, []JSONMove{{Ply: 1, Colour: "white", Piece: "WP5", From: "e2", To: "e4"}})
}

func TestJSONWriter_Reports(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(&buf, testConfig(config.JSON, config.MoveLog))

	testutil.AssertNoError(t, jw.WriteReport(testReport(t, "WP5 U 2\nBP5 D 3\n")))
	testutil.AssertNoError(t, jw.WriteError("lost.txt", fmt.Errorf("no such file")))
	testutil.AssertEqual(t, buf.Len(), 0)

	testutil.AssertNoError(t, jw.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Reports), 2)

	r := out.Reports[0]
	testutil.AssertEqual(t, r.Name, "game.txt")
	testutil.AssertEqual(t, r.Accepted, 1)
	testutil.AssertEqual(t, r.Rejected, 1)
	testutil.AssertEqual(t, len(r.Steps), 2)
	testutil.AssertEqual(t, r.Steps[0].Result, "ongoing")
	testutil.AssertContains(t, r.Steps[1].Error, "shape")
	testutil.AssertEqual(t, out.Reports[1].Error, "no such file")

	// A second flush has nothing to write.
	buf.Reset()
	testutil.AssertNoError(t, jw.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestSnapshotToJSON_Captures(t *testing.T) {
	g := engine.NewGame()
	for _, m := range []struct{ id, sq string }{{"WP5", "e4"}, {"BP4", "d5"}, {"WP5", "d5"}} {
		_, err := g.Move(m.id, testutil.MustSquare(t, m.sq))
		testutil.AssertNoError(t, err)
	}

	snap := SnapshotToJSON(g, false)
	testutil.AssertEqual(t, snap.Captured, []string{"BP4"})
	testutil.AssertEqual(t, snap.Moves[2].Captured, "BP4")
	testutil.AssertEqual(t, snap.MovesSinceCapture, 0)
	testutil.AssertEqual(t, len(snap.LegalMoves), 0)

	var moved int
	for _, p := range snap.Pieces {
		if p.Moved {
			moved++
		}
	}
	testutil.AssertEqual(t, moved, 1)
	testutil.AssertEqual(t, chess.BoardSize*4-1, len(snap.Pieces))
}
