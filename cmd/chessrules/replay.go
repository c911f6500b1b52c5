package main

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// replayAll replays every script and writes one report per script, in
// argument order. It returns the number of scripts that could not be
// replayed.
func replayAll(ctx context.Context, paths []string, cfg *config.Config) int {
	if len(paths) == 0 {
		cfg.Logf(config.Silent, "No script files given.\n")
		return 1
	}

	detector := hashing.NewDuplicateDetector(*exactDuplicates, *duplicateCapacity)
	results := worker.ReplayFiles(ctx, paths, cfg, detector)

	w := output.NewWriter(cfg.OutputFile, cfg)
	failed := len(paths) - len(results)
	replayed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			w.WriteError(r.Path, r.Error) //nolint:errcheck,gosec // G104: reported via Close
			continue
		}
		replayed++
		w.WriteReport(r.Report) //nolint:errcheck,gosec // G104: reported via Close
	}
	if err := w.Close(); err != nil {
		cfg.Logf(config.Silent, "Error writing output: %v\n", err)
		failed++
	}

	reportStatistics(cfg, replayed, detector.DuplicateCount(), failed)
	return failed
}

// reportStatistics logs the final batch statistics.
func reportStatistics(cfg *config.Config, replayed, duplicates, failed int) {
	cfg.Logf(config.Summary, "%d script(s) replayed, %d duplicate final position(s), %d failed.\n",
		replayed, duplicates, failed)
}
