package suspects

import (
	"context"
	"sync"

	"lootledger/core/gameinfo"
	"lootledger/core/ledger"

	"go.uber.org/zap"
)

// Aggregator runs the full death-record pipeline for a set of suspects
// concurrently and merges the results into a single lost-loot table.
type Aggregator struct {
	fetcher *Fetcher
	logger  *zap.Logger

	// maxConcurrency caps simultaneous per-player pipelines.
	// Zero means unbounded.
	maxConcurrency int
}

// NewAggregator creates a suspect aggregator. maxConcurrency of zero keeps
// the fan-out unbounded.
func NewAggregator(api gameinfo.Client, logger *zap.Logger, maxConcurrency int) *Aggregator {
	return &Aggregator{
		fetcher:        NewFetcher(api, logger),
		logger:         logger,
		maxConcurrency: maxConcurrency,
	}
}

// LostLoot fetches the lost-loot rows of every named player, one concurrent
// pipeline per player, and returns the armor-filtered concatenation. A nil
// result means no death evidence was found at all; the reconciliation
// engine then treats every missing row as unexplained.
//
// Results are collected into per-player slots reserved before launch, so
// the player order of the merged table is deterministic even though the
// pipelines complete in arbitrary order.
func (a *Aggregator) LostLoot(ctx context.Context, players []string) []ledger.Row {
	results := make([][]ledger.Row, len(players))

	var sem chan struct{}
	if a.maxConcurrency > 0 {
		sem = make(chan struct{}, a.maxConcurrency)
	}

	var wg sync.WaitGroup
	for i, name := range players {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			results[i] = a.fetcher.LostLoot(ctx, name)
		}(i, name)
	}
	wg.Wait()

	var merged []ledger.Row
	for _, rows := range results {
		merged = append(merged, rows...)
	}
	merged = ledger.FilterArmor(merged)

	if len(merged) == 0 {
		a.logger.Info("No lost-loot evidence found", zap.Int("suspects", len(players)))
		return nil
	}
	a.logger.Info("Aggregated lost loot",
		zap.Int("suspects", len(players)),
		zap.Int("rows", len(merged)),
	)
	return merged
}
