package recon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lootledger/core/ledger"
	"lootledger/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// stubEngine returns a canned report and records its inputs.
type stubEngine struct {
	report  *reconcile.Report
	parties []string
	mode    ledger.Mode
}

func (s *stubEngine) Run(ctx context.Context, lootLog, chestLog []ledger.Row, parties []string, mode ledger.Mode) *reconcile.Report {
	s.parties = parties
	s.mode = mode
	return s.report
}

// stubSuspects returns canned lost-loot rows.
type stubSuspects struct {
	rows []ledger.Row
}

func (s *stubSuspects) LostLoot(ctx context.Context, players []string) []ledger.Row {
	return s.rows
}

func newTestApp(engine Runner, suspects reconcile.SuspectSource, defaultParties ...string) *fiber.App {
	app := fiber.New()
	feature := NewFeature(engine, suspects, defaultParties, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleReconcile_Validation(t *testing.T) {
	app := newTestApp(&stubEngine{}, &stubSuspects{})

	t.Run("MissingFields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/reconcile", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("BadMode", func(t *testing.T) {
		body := `{"loot_log":"loot.xlsx","chest_log":"chest.xlsx","parties":["Tidal"],"mode":"nope"}`
		req := httptest.NewRequest("POST", "/reconcile", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("BadBody", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/reconcile", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleReconcile_MissingLedgerFile(t *testing.T) {
	app := newTestApp(&stubEngine{}, &stubSuspects{})

	body := `{"loot_log":"/does/not/exist.xlsx","chest_log":"/neither.xlsx","parties":["Tidal"]}`
	req := httptest.NewRequest("POST", "/reconcile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleReconcile_DefaultParties(t *testing.T) {
	dir := t.TempDir()
	lootPath := filepath.Join(dir, "loot.xlsx")
	chestPath := filepath.Join(dir, "chest.xlsx")
	for _, path := range []string{lootPath, chestPath} {
		f := excelize.NewFile()
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())
	}

	engine := &stubEngine{report: &reconcile.Report{}}
	app := newTestApp(engine, &stubSuspects{}, "Tidal")

	// Omitted parties fall back to the configured allow-list, as the CLI does.
	body := fmt.Sprintf(`{"loot_log":%q,"chest_log":%q}`, lootPath, chestPath)
	req := httptest.NewRequest("POST", "/reconcile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Tidal"}, engine.parties)
	assert.Equal(t, ledger.ModeGuild, engine.mode)
}

func TestHandleSuspectLoot(t *testing.T) {
	rows := []ledger.Row{{
		Date:       time.Date(2023, 2, 12, 20, 15, 18, 0, time.UTC),
		PlayerName: "PlayerA",
		ItemName:   "Expert Plate Helmet",
		Amount:     1,
	}}
	app := newTestApp(&stubEngine{}, &stubSuspects{rows: rows})

	resp, err := app.Test(httptest.NewRequest("GET", "/suspects/PlayerA", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Player   string       `json:"player"`
		LostLoot []ledger.Row `json:"lost_loot"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "PlayerA", payload.Player)
	require.Len(t, payload.LostLoot, 1)
	assert.Equal(t, "Expert Plate Helmet", payload.LostLoot[0].ItemName)
}
