// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Mode
	replayMode = flag.Bool("replay", false, "Replay the move scripts named as arguments instead of playing interactively")
	startFEN   = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	colourOutput = flag.Bool("color", false, "Colour piece identities on the text board")
	showHints    = flag.Bool("hints", false, "Include legal moves in board snapshots")
	noPieces     = flag.Bool("nopieces", false, "Don't list living pieces after each move")

	// Duplicate detection
	exactDuplicates   = flag.Bool("exactdup", false, "Only report duplicate final positions reached in the same number of moves")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summaries)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of scripts replayed at once (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Workers = *workers
	cfg.OutputFilename = *outputFile

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.MoveLog
	}
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.Colour = *colourOutput
	cfg.Output.ShowLegalMoves = *showHints
	cfg.Output.ShowLivingPieces = !*noPieces
}
