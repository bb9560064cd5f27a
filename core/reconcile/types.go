package reconcile

import "lootledger/core/ledger"

// Report is the output of one reconciliation run. The cleaned ledgers are
// included so the export can reproduce exactly what was matched.
type Report struct {
	// LootLog is the cleaned, sorted distribution ledger.
	LootLog []ledger.Row `json:"loot_log"`

	// ChestLog is the cleaned, sorted withdrawal ledger.
	ChestLog []ledger.Row `json:"chest_log"`

	// MissingLoot is the distribution rows with no matching withdrawal
	// inside the time window.
	MissingLoot []ledger.Row `json:"missing_loot"`

	// LostLoot is the aggregated death evidence of the implicated players.
	// Nil when no evidence could be found.
	LostLoot []ledger.Row `json:"lost_loot"`

	// RattedLoot is the final report: missing loot not explained by any
	// death evidence.
	RattedLoot []ledger.Row `json:"ratted_loot"`
}

// rowIdentity is the full-row identity used by the set-difference step.
// Guild and alliance are excluded; they are dropped from the cleaned
// distribution ledger before matching.
type rowIdentity struct {
	date        int64
	playerName  string
	itemName    string
	enchantment int
	amount      int
}

func identity(r ledger.Row) rowIdentity {
	return rowIdentity{
		date:        r.Date.UnixNano(),
		playerName:  r.PlayerName,
		itemName:    r.ItemName,
		enchantment: r.Enchantment,
		amount:      r.Amount,
	}
}
