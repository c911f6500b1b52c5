package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/parser"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// console writes player-facing messages: to the output in text mode, to
// the log in JSON mode so the output stays machine-readable.
type console struct {
	cfg  *config.Config
	text bool
}

func (c console) say(lines ...string) {
	for _, line := range lines {
		if c.text {
			fmt.Fprintf(c.cfg.OutputFile, "\n%s\n", line)
		} else {
			c.cfg.Logf(config.Summary, "%s\n", line)
		}
	}
}

func (c console) prompt(s string) {
	if c.text {
		fmt.Fprint(c.cfg.OutputFile, s)
	}
}

// play runs an interactive game reading one command per line from in
// until the game ends, the player quits or input runs out.
func play(in io.Reader, cfg *config.Config) error {
	reg := session.NewRegistry(2)
	var s *session.Session
	var err error
	if cfg.StartFEN != "" {
		s, err = reg.CreateFromFEN(cfg.StartFEN)
	} else {
		s, err = reg.Create()
	}
	if err != nil {
		return err
	}
	defer reg.Remove(s.Name()) //nolint:errcheck // the session was just created

	w := output.NewWriter(cfg.OutputFile, cfg)
	defer w.Close()
	con := console{cfg: cfg, text: cfg.Output.Format == config.Text}

	cfg.Logf(config.Summary, "Game %s started\n", s.Name())
	con.say("*** Welcome to Chess Game! ***")
	if err := w.WriteGame(s.Game()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		con.say(output.TurnBanner(s.ToMove()))
		con.prompt("Enter move, 'help' or 'quit': ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit":
			con.say("*** Game ended by user. ***")
			return nil
		case "help":
			con.say("*** Available directions (short forms): ***", notation.Help())
			continue
		case "fen":
			con.say(s.FEN())
			continue
		case "moves":
			if len(fields) != 2 {
				con.say("*** Usage: moves <piece> ***")
				continue
			}
			dests, err := s.LegalMovesFor(strings.ToUpper(fields[1]))
			if err != nil {
				con.say(output.ErrorMessage(err))
				continue
			}
			var sb strings.Builder
			output.RenderLegalMoves(&sb, strings.ToUpper(fields[1]), dests)
			con.say(strings.TrimSuffix(sb.String(), "\n"))
			continue
		}

		cmd, err := parser.ParseCommand(scanner.Text())
		if err != nil {
			cfg.Logf(config.MoveLog, "%v\n", err)
			con.say(output.ErrorMessage(err))
			continue
		}

		outcome, err := s.Apply(cmd)
		if err != nil {
			cfg.Logf(config.MoveLog, "%s rejected: %v\n", cmd, err)
			con.say(output.ErrorMessage(err))
			continue
		}
		cfg.Logf(config.MoveLog, "%s %s-%s, %s\n", cmd, outcome.Record.From, outcome.Record.To, outcome.Result)

		con.say(output.OutcomeMessages(outcome)...)
		if err := w.WriteGame(s.Game()); err != nil {
			return err
		}
		if outcome.Result.Status.IsTerminal() {
			con.say("*** Game Over! ***")
			cfg.Logf(config.Summary, "Game %s: %s after %d moves\n", s.Name(), outcome.Result, outcome.Record.Ply)
			return nil
		}
	}
}
