package cmd

import (
	"testing"
	"time"

	"lootledger/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRows_NoEvidenceIsEmptyArray(t *testing.T) {
	out, err := renderRows(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestRenderRows(t *testing.T) {
	rows := []ledger.Row{{
		Date:       time.Date(2023, 2, 12, 20, 15, 18, 0, time.UTC),
		PlayerName: "PlayerA",
		ItemName:   "Expert Plate Helmet",
		Amount:     1,
	}}

	out, err := renderRows(rows)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"player_name": "PlayerA"`)
}
