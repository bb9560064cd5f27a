package ledger

import "strings"

// Tiers are the item tier names that identify gear, in ascending order.
// The armor filter emits matches grouped in this order.
var Tiers = []string{"Beginner", "Novice", "Journeyman", "Adept", "Expert", "Master", "Grandmaster", "Elder"}

// NonArmorCategories are item categories that match a tier name but are
// not gear, and must be excluded after tier matching.
var NonArmorCategories = []string{"Rune", "Soul", "Relic", "Bag", "Cape", "Demolition", "Journal", "Horse", "Ox", "Crest"}

// FilterParties keeps rows whose guild (or alliance, depending on mode)
// is in the allow-list. No match yields an empty result, not an error.
func FilterParties(rows []Row, allowed []string, mode Mode) []Row {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		party := row.Guild
		if mode == ModeAlliance {
			party = row.Alliance
		}
		if _, ok := allowedSet[party]; ok {
			out = append(out, row)
		}
	}
	return out
}

// FilterRemovals drops every row with a negative amount. On the withdrawal
// ledger those rows record items being removed from the chest, which carry
// no deposit signal. Relative order of the remaining rows is preserved.
func FilterRemovals(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Amount < 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FilterArmor keeps rows whose item name contains one of the tier names
// and none of the non-armor category names. Both checks are case-sensitive
// substring tests; rows with an empty item name never match. Output is
// grouped by tier in Tiers order, which makes re-application a no-op.
// A row is emitted once under its first matching tier ("Grandmaster" items
// also contain "Master" and must not double up).
func FilterArmor(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	matched := make(map[int]struct{}, len(rows))
	for _, tier := range Tiers {
		for i, row := range rows {
			if _, done := matched[i]; done {
				continue
			}
			if row.ItemName == "" || !strings.Contains(row.ItemName, tier) {
				continue
			}
			matched[i] = struct{}{}
			if containsAny(row.ItemName, NonArmorCategories) {
				continue
			}
			out = append(out, row)
		}
	}
	return out
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
