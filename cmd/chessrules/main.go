// chessrules plays chess between two people at one terminal, or replays
// move scripts in bulk. Moves name a piece by identity and a direction:
// "WP5 U 2" advances White's e-pawn two squares.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *replayMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if failed := replayAll(ctx, flag.Args(), cfg); failed > 0 {
			os.Exit(1)
		}
		return
	}

	if err := play(os.Stdin, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n")
	fmt.Fprintf(os.Stderr, "       chessrules -replay [options] script-files...\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess at the terminal, or bulk replay of move scripts.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are \"<piece> <direction> [steps]\", one per line, e.g. \"WP5 U 2\".\n")
	fmt.Fprintf(os.Stderr, "Piece codes: WP1-8/BP1-8 (Pawns), WN1-2/BN1-2 (Knights), WB1-2/BB1-2 (Bishops),\n")
	fmt.Fprintf(os.Stderr, "WR1-2/BR1-2 (Rooks), WQ/BQ (Queen), WKG/BKG (King)\n\n")
	fmt.Fprintf(os.Stderr, "Directions:\n")
	fmt.Fprint(os.Stderr, notation.Help())
}
