package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// ReplayFunc returns a ProcessFunc that replays the item's file with cfg.
func ReplayFunc(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		report, err := processing.ReplayFile(item.Path, cfg)
		return ProcessResult{Path: item.Path, Index: item.Index, Report: report, Error: err}
	}
}

// ReplayFiles replays every path on cfg.WorkerCount() workers and returns
// the results in input order. When detector is non-nil, each report whose
// final position matches that of an earlier path gets DuplicateOf set.
// Cancelling ctx stops work not yet started; those paths are missing from
// the result.
func ReplayFiles(ctx context.Context, paths []string, cfg *config.Config, detector *hashing.DuplicateDetector) []ProcessResult {
	pool := NewPool(ReplayFunc(cfg), WithWorkers(cfg.WorkerCount()), WithBufferSize(len(paths)))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, path := range paths {
			select {
			case <-ctx.Done():
				pool.Stop()
				return
			default:
			}
			pool.Submit(WorkItem{Path: path, Index: i})
		}
	}()

	results := make([]ProcessResult, 0, len(paths))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	if detector != nil {
		markDuplicates(results, detector)
	}
	return results
}

// markDuplicates checks final positions in input order so the earliest
// script is the one reported. It runs on the collecting goroutine once
// every worker has finished.
func markDuplicates(results []ProcessResult, detector *hashing.DuplicateDetector) {
	for _, r := range results {
		if r.Report == nil {
			continue
		}
		if first, dup := detector.CheckAndAdd(r.Report.Signature()); dup {
			r.Report.DuplicateOf = first.Name
		}
	}
}
