package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(minutes int) time.Time {
	return time.Date(2023, 2, 12, 20, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute)
}

func TestFilterRemovals(t *testing.T) {
	rows := []Row{
		{Date: ts(0), PlayerName: "A", ItemName: "Expert Plate Helmet", Amount: 2},
		{Date: ts(1), PlayerName: "B", ItemName: "Expert Plate Helmet", Amount: -1},
		{Date: ts(2), PlayerName: "C", ItemName: "Adept Cloth Robe", Amount: 0},
		{Date: ts(3), PlayerName: "D", ItemName: "Master Leather Hood", Amount: -3},
		{Date: ts(4), PlayerName: "E", ItemName: "Novice Broadsword", Amount: 1},
	}

	got := FilterRemovals(rows)

	assert.Len(t, got, 3)
	// Non-negative rows keep their original relative order
	assert.Equal(t, []string{"A", "C", "E"}, []string{got[0].PlayerName, got[1].PlayerName, got[2].PlayerName})
	for _, row := range got {
		assert.GreaterOrEqual(t, row.Amount, 0)
	}
}

func TestFilterArmor(t *testing.T) {
	rows := []Row{
		{PlayerName: "A", ItemName: "Expert Plate Helmet"},
		{PlayerName: "B", ItemName: "Adept Cloth Robe"},
		{PlayerName: "C", ItemName: "Expert Rune"},            // tier match but blocklisted
		{PlayerName: "D", ItemName: "Master's Bag of Coins"},  // blocklisted
		{PlayerName: "E", ItemName: "Grandmaster Cape"},       // blocklisted
		{PlayerName: "F", ItemName: ""},                       // missing name never matches
		{PlayerName: "G", ItemName: "Elder Journal of Might"}, // blocklisted
		{PlayerName: "H", ItemName: "Beginner Riding Horse"},  // blocklisted
	}

	got := FilterArmor(rows)

	names := make([]string, 0, len(got))
	for _, row := range got {
		names = append(names, row.PlayerName)
	}
	// Output is grouped by tier order: Beginner < Adept < Expert
	assert.Equal(t, []string{"B", "A"}, names)
}

func TestFilterArmor_Idempotent(t *testing.T) {
	rows := []Row{
		{PlayerName: "A", ItemName: "Elder Plate Boots"},
		{PlayerName: "B", ItemName: "Expert Plate Helmet"},
		{PlayerName: "C", ItemName: "Journeyman Soul"},
		{PlayerName: "D", ItemName: "Novice Broadsword"},
	}

	once := FilterArmor(rows)
	twice := FilterArmor(once)

	assert.Equal(t, once, twice)
}

func TestFilterArmor_GrandmasterMatchesOnce(t *testing.T) {
	// "Grandmaster" contains "Master" and matches two tier substrings.
	rows := []Row{{PlayerName: "A", ItemName: "Grandmaster Plate Armor"}}

	assert.Len(t, FilterArmor(rows), 1)
}

func TestFilterArmor_StableUnderPartitioning(t *testing.T) {
	lower := []Row{
		{PlayerName: "A", ItemName: "Beginner Cloth Cowl"},
		{PlayerName: "B", ItemName: "Novice Broadsword"},
	}
	upper := []Row{
		{PlayerName: "C", ItemName: "Grandmaster Plate Armor"},
		{PlayerName: "D", ItemName: "Elder Leather Shoes"},
	}

	union := FilterArmor(append(FilterArmor(lower), FilterArmor(upper)...))

	assert.Len(t, union, 4)
	assert.Equal(t, append(FilterArmor(lower), FilterArmor(upper)...), union)
}

func TestFilterParties(t *testing.T) {
	rows := []Row{
		{PlayerName: "A", Guild: "Tidal", Alliance: "SURF"},
		{PlayerName: "B", Guild: "Undertow", Alliance: "SURF"},
		{PlayerName: "C", Guild: "Tidal", Alliance: "CREST"},
		{PlayerName: "D", Guild: "Riptide", Alliance: "WAVE"},
	}

	t.Run("GuildMode", func(t *testing.T) {
		got := FilterParties(rows, []string{"Tidal"}, ModeGuild)
		assert.Len(t, got, 2)
		assert.Equal(t, "A", got[0].PlayerName)
		assert.Equal(t, "C", got[1].PlayerName)
	})

	t.Run("AllianceMode", func(t *testing.T) {
		got := FilterParties(rows, []string{"SURF"}, ModeAlliance)
		assert.Len(t, got, 2)
		assert.Equal(t, "A", got[0].PlayerName)
		assert.Equal(t, "B", got[1].PlayerName)
	})

	t.Run("NoMatchYieldsEmpty", func(t *testing.T) {
		got := FilterParties(rows, []string{"Nobody"}, ModeGuild)
		assert.Empty(t, got)
	})
}

func TestSortByDate(t *testing.T) {
	rows := []Row{
		{Date: ts(30), PlayerName: "late"},
		{Date: ts(0), PlayerName: "early"},
		{Date: ts(10), PlayerName: "middle"},
	}

	got := SortByDate(rows)

	assert.Equal(t, []string{"early", "middle", "late"}, []string{got[0].PlayerName, got[1].PlayerName, got[2].PlayerName})
	// Input is untouched
	assert.Equal(t, "late", rows[0].PlayerName)
}

func TestDistinctPlayers(t *testing.T) {
	rows := []Row{
		{PlayerName: "B"},
		{PlayerName: "A"},
		{PlayerName: "B"},
		{PlayerName: "C"},
		{PlayerName: "A"},
	}

	assert.Equal(t, []string{"B", "A", "C"}, DistinctPlayers(rows))
}
