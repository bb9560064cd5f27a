package ledger

import (
	"sort"
	"time"
)

// Mode selects which party column the allow-list filter matches against.
type Mode string

const (
	// ModeGuild filters rows by guild name.
	ModeGuild Mode = "guild"
	// ModeAlliance filters rows by alliance name.
	ModeAlliance Mode = "alliance"
)

// IsValid checks if the mode is one of the supported party columns.
func (m Mode) IsValid() bool {
	return m == ModeGuild || m == ModeAlliance
}

// Row is a single ledger entry. Distribution and withdrawal ledgers share
// this shape; lost-loot rows reuse it with Guild/Alliance left empty and
// Amount meaning "quantity found on the corpse".
type Row struct {
	// Date is the moment the entry was recorded.
	Date time.Time `json:"date"`
	// PlayerName is the receiving (or withdrawing, or dying) player.
	PlayerName string `json:"player_name"`
	// ItemName is the human-readable item name.
	ItemName string `json:"item_name"`
	// Enchantment is the item enchantment level (0 if none).
	Enchantment int `json:"enchantment"`
	// Amount is signed; negative amounts on the withdrawal ledger denote
	// a removal and are dropped before matching.
	Amount int `json:"amount"`
	// Guild is the receiving player's guild (distribution ledger only).
	Guild string `json:"guild,omitempty"`
	// Alliance is the receiving player's alliance (distribution ledger only).
	Alliance string `json:"alliance,omitempty"`
}

// Key is the composite matching key used by the reconciliation engine.
// Matching deliberately ignores Amount and Enchantment.
type Key struct {
	PlayerName string
	ItemName   string
}

// Key returns the row's composite matching key.
func (r Row) Key() Key {
	return Key{PlayerName: r.PlayerName, ItemName: r.ItemName}
}

// SortByDate returns a copy of rows sorted by date ascending.
// The sort is stable so same-timestamp rows keep their relative order.
func SortByDate(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// DistinctPlayers returns the distinct player names in rows, in order of
// first appearance.
func DistinctPlayers(rows []Row) []string {
	seen := make(map[string]struct{}, len(rows))
	var players []string
	for _, row := range rows {
		if _, ok := seen[row.PlayerName]; ok {
			continue
		}
		seen[row.PlayerName] = struct{}{}
		players = append(players, row.PlayerName)
	}
	return players
}
