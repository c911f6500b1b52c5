// Package processing replays parsed move scripts against a game and
// reports what happened to every line.
package processing

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// Step is the fate of one script line.
type Step struct {
	Line     int
	Command  notation.Command
	Accepted bool
	// Result is the game status after an accepted move.
	Result engine.GameResult
	// Err is the rejection reason, or nil when the move was accepted.
	Err error
}

// Report summarises the replay of one script.
type Report struct {
	Name  string
	Steps []Step

	Accepted int
	Rejected int
	// Skipped counts lines left unplayed because the game ended.
	Skipped int
	// ParseErrors holds lines that could not be parsed. They are not played.
	ParseErrors []error

	Final engine.GameResult
	FEN   string
	Hash  uint64

	// DuplicateOf names an earlier script that reached the same final
	// position. It is filled in by batch replay.
	DuplicateOf string

	Game *engine.Game
}

// Signature returns the duplicate-detection signature of the final position.
func (r *Report) Signature() hashing.Signature {
	return hashing.Signature{Name: r.Name, Hash: r.Hash, Ply: r.Game.Ply()}
}

// String returns a one-line summary of the report.
func (r *Report) String() string {
	s := fmt.Sprintf("%s: %d accepted, %d rejected", r.Name, r.Accepted, r.Rejected)
	if r.Skipped > 0 {
		s += fmt.Sprintf(", %d skipped", r.Skipped)
	}
	if len(r.ParseErrors) > 0 {
		s += fmt.Sprintf(", %d unparsable", len(r.ParseErrors))
	}
	s += "; " + r.Final.String()
	if r.DuplicateOf != "" {
		s += " (same final position as " + r.DuplicateOf + ")"
	}
	return s
}

// NewGame returns the game a replay starts from: cfg.StartFEN when set,
// otherwise the standard starting position.
func NewGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(cfg.StartFEN)
}

// Replay applies every line of script to a new game. Rejected lines are
// recorded and play continues; once the game ends the remaining lines are
// skipped. The only error is an unusable start position.
func Replay(script *parser.Script, cfg *config.Config) (*Report, error) {
	return replay(script, nil, cfg)
}

func replay(script *parser.Script, parseErrors []error, cfg *config.Config) (*Report, error) {
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: script.Name, ParseErrors: parseErrors, Game: g}
	for _, line := range script.Lines {
		if g.IsOver() {
			report.Skipped++
			continue
		}

		step := Step{Line: line.Number, Command: line.Command}
		outcome, err := line.Command.Apply(g)
		if err != nil {
			step.Err = err
			report.Rejected++
			cfg.Logf(config.MoveLog, "%s:%d: %s rejected: %v\n", script.Name, line.Number, line.Command, err)
		} else {
			step.Accepted = true
			step.Result = outcome.Result
			report.Accepted++
			cfg.Logf(config.MoveLog, "%s:%d: %s %s-%s, %s\n", script.Name, line.Number, line.Command,
				outcome.Record.From, outcome.Record.To, outcome.Result)
		}
		report.Steps = append(report.Steps, step)
	}

	report.Final = g.Result()
	report.FEN = engine.BoardToFEN(g)
	report.Hash = hashing.HashGame(g)
	cfg.Logf(config.Summary, "%s\n", report)
	return report, nil
}

// ReplayReader parses a script from r and replays it. Lines that fail to
// parse are collected in Report.ParseErrors and the rest are still played.
func ReplayReader(r io.Reader, name string, cfg *config.Config) (*Report, error) {
	p := parser.NewParser(r, name, cfg)
	script := &parser.Script{Name: name}
	var parseErrors []error
	for {
		line, err := p.ParseLine()
		if err != nil {
			cfg.Logf(config.Summary, "%v\n", err)
			parseErrors = append(parseErrors, err)
			continue
		}
		if line == nil {
			break
		}
		script.Lines = append(script.Lines, *line)
	}

	return replay(script, parseErrors, cfg)
}

// ReplayFile opens path and replays it.
func ReplayFile(path string, cfg *config.Config) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReplayReader(f, path, cfg)
}
