package reconcile

import (
	"context"
	"time"

	"lootledger/core/ledger"

	"go.uber.org/zap"
)

// WithdrawalLag is the tail added to the matching windows. Loot handed out
// at the end of an operation is typically withdrawn within two hours.
const WithdrawalLag = 2 * time.Hour

// SuspectSource provides the aggregated lost-loot evidence for a set of
// player names. A nil result means no evidence was found.
type SuspectSource interface {
	LostLoot(ctx context.Context, players []string) []ledger.Row
}

// Engine reconciles the distribution ledger against the withdrawal ledger
// and the suspects' death evidence. It owns its cleaned copies of both
// ledgers for the duration of a run and never mutates caller input.
type Engine struct {
	suspects SuspectSource
	logger   *zap.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(suspects SuspectSource, logger *zap.Logger) *Engine {
	return &Engine{suspects: suspects, logger: logger}
}

// CleanLootLog applies the distribution-side filtering pipeline: party
// allow-list, armor restriction, sort by date.
func (e *Engine) CleanLootLog(rows []ledger.Row, parties []string, mode ledger.Mode) []ledger.Row {
	rows = ledger.FilterParties(rows, parties, mode)
	rows = ledger.FilterArmor(rows)
	return ledger.SortByDate(rows)
}

// CleanChestLog applies the withdrawal-side filtering pipeline: drop
// removals, armor restriction, sort by date.
func (e *Engine) CleanChestLog(rows []ledger.Row) []ledger.Row {
	rows = ledger.FilterRemovals(rows)
	rows = ledger.FilterArmor(rows)
	return ledger.SortByDate(rows)
}

// MissingLoot returns the distribution rows whose (player, item) key has no
// withdrawal inside the window spanning the distribution ledger plus the
// withdrawal lag. Both inputs must already be cleaned and sorted.
//
// Matching is by composite key only: any withdrawal of that item name by
// that player inside the window explains every handout of the pair,
// regardless of amount or enchantment.
func (e *Engine) MissingLoot(lootLog, chestLog []ledger.Row) []ledger.Row {
	if len(lootLog) == 0 {
		return nil
	}

	start := lootLog[0].Date
	end := lootLog[len(lootLog)-1].Date.Add(WithdrawalLag)

	withdrawn := make(map[ledger.Key]struct{})
	for _, row := range windowRows(chestLog, start, end) {
		withdrawn[row.Key()] = struct{}{}
	}

	var missing []ledger.Row
	for _, row := range lootLog {
		if _, ok := withdrawn[row.Key()]; !ok {
			missing = append(missing, row)
		}
	}

	e.logger.Info("Computed missing loot",
		zap.Int("distributed", len(lootLog)),
		zap.Int("withdrawals_in_window", len(withdrawn)),
		zap.Int("missing", len(missing)),
	)
	return missing
}

// Reconcile removes from the missing-loot table every row explained by the
// lost-loot evidence. With no evidence at all the table is returned
// unchanged: everything remains suspect.
//
// A row counts as explained when its player name appears among the windowed
// lost-loot players AND its item name appears among the windowed lost-loot
// items. The two sets are matched independently, not as a joint key, so a
// death by one suspect can explain an item lost by another. Coarse, but it
// only ever under-reports.
func (e *Engine) Reconcile(missing, lost []ledger.Row) []ledger.Row {
	if len(missing) == 0 || len(lost) == 0 {
		return missing
	}

	start := missing[0].Date
	end := missing[len(missing)-1].Date.Add(WithdrawalLag)
	windowed := windowRows(lost, start, end)

	lostPlayers := make(map[string]struct{})
	lostItems := make(map[string]struct{})
	for _, row := range windowed {
		lostPlayers[row.PlayerName] = struct{}{}
		lostItems[row.ItemName] = struct{}{}
	}

	// Set difference via concatenate-and-drop-rows-seen-twice: explained
	// rows pair up and vanish. Rows already duplicated inside missing
	// vanish too; that matches the historical report behavior.
	counts := make(map[rowIdentity]int, len(missing))
	for _, row := range missing {
		counts[identity(row)]++
	}
	for _, row := range missing {
		_, playerLost := lostPlayers[row.PlayerName]
		_, itemLost := lostItems[row.ItemName]
		if playerLost && itemLost {
			counts[identity(row)]++
		}
	}

	var ratted []ledger.Row
	for _, row := range missing {
		if counts[identity(row)] == 1 {
			ratted = append(ratted, row)
		}
	}

	e.logger.Info("Reconciled against death evidence",
		zap.Int("missing", len(missing)),
		zap.Int("lost_in_window", len(windowed)),
		zap.Int("ratted", len(ratted)),
	)
	return ratted
}

// Run executes the full pipeline: clean both ledgers, compute missing loot,
// fetch the implicated players' death evidence, reconcile.
func (e *Engine) Run(ctx context.Context, lootLog, chestLog []ledger.Row, parties []string, mode ledger.Mode) *Report {
	cleanLoot := e.CleanLootLog(lootLog, parties, mode)
	cleanChest := e.CleanChestLog(chestLog)

	missing := e.MissingLoot(cleanLoot, cleanChest)

	var lost []ledger.Row
	if players := ledger.DistinctPlayers(missing); len(players) > 0 {
		lost = e.suspects.LostLoot(ctx, players)
	}

	return &Report{
		LootLog:     cleanLoot,
		ChestLog:    cleanChest,
		MissingLoot: missing,
		LostLoot:    lost,
		RattedLoot:  e.Reconcile(missing, lost),
	}
}

// windowRows keeps rows strictly inside (start, end). Bounds are exclusive,
// matching the export timestamps' second granularity.
func windowRows(rows []ledger.Row, start, end time.Time) []ledger.Row {
	out := make([]ledger.Row, 0, len(rows))
	for _, row := range rows {
		if row.Date.After(start) && row.Date.Before(end) {
			out = append(out, row)
		}
	}
	return out
}
