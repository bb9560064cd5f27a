package suspects

import (
	"context"
	"sync"
	"time"

	"lootledger/core/gameinfo"
	"lootledger/core/ledger"

	"go.uber.org/zap"
)

// Death is one combat death of a suspect: when it happened and what the
// victim was carrying. Immutable after construction; deaths with an empty
// inventory carry no reconciliation signal and are never produced.
type Death struct {
	Date       time.Time
	PlayerName string
	Inventory  []InventoryItem
}

// InventoryItem is one stack of items found on the corpse. ItemName may be
// empty when the catalog lookup failed; the quantity and enchantment are
// kept regardless.
type InventoryItem struct {
	ItemName    string
	Enchantment int
	Count       int
}

// Fetcher resolves a single player's public death history.
//
// The pipeline is sequential up to the event list (player search, death
// event ids) and fans out one goroutine per event for the detail fetches.
// Every upstream failure shrinks the result instead of failing the run.
type Fetcher struct {
	api    gameinfo.Client
	logger *zap.Logger
}

// NewFetcher creates a death-record fetcher.
func NewFetcher(api gameinfo.Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{api: api, logger: logger}
}

// Deaths fetches every resolvable death of the named player. Completion
// order of the event fetches varies, so the slice order is not stable
// across runs.
func (f *Fetcher) Deaths(ctx context.Context, playerName string) []Death {
	playerID, err := f.api.PlayerID(ctx, playerName)
	if err != nil {
		f.logger.Debug("Player lookup failed", zap.String("player", playerName), zap.Error(err))
		return nil
	}

	eventIDs, err := f.api.DeathEvents(ctx, playerID)
	if err != nil {
		f.logger.Debug("Death list lookup failed", zap.String("player", playerName), zap.Error(err))
		return nil
	}

	// One slot per event, reserved before launch and written at most once
	// by its own goroutine.
	slots := make([]*Death, len(eventIDs))
	var wg sync.WaitGroup
	for i, eventID := range eventIDs {
		wg.Add(1)
		go func(i int, eventID int64) {
			defer wg.Done()
			slots[i] = f.fetchDeath(ctx, playerName, eventID)
		}(i, eventID)
	}
	wg.Wait()

	deaths := make([]Death, 0, len(slots))
	for _, death := range slots {
		if death != nil {
			deaths = append(deaths, *death)
		}
	}
	return deaths
}

// LostLoot flattens the player's deaths into one ledger row per inventory
// stack, sorted by date ascending.
func (f *Fetcher) LostLoot(ctx context.Context, playerName string) []ledger.Row {
	var rows []ledger.Row
	for _, death := range f.Deaths(ctx, playerName) {
		for _, item := range death.Inventory {
			rows = append(rows, ledger.Row{
				Date:        death.Date,
				PlayerName:  death.PlayerName,
				ItemName:    item.ItemName,
				Enchantment: item.Enchantment,
				Amount:      item.Count,
			})
		}
	}
	return ledger.SortByDate(rows)
}

// fetchDeath fetches one event and reduces it to a Death. Any failure, and
// any event with an empty inventory, yields nil.
func (f *Fetcher) fetchDeath(ctx context.Context, playerName string, eventID int64) *Death {
	event, err := f.api.Event(ctx, eventID)
	if err != nil {
		f.logger.Debug("Event fetch failed", zap.Int64("event_id", eventID), zap.Error(err))
		return nil
	}

	inventory := make([]InventoryItem, 0, len(event.Inventory))
	for _, slot := range event.Inventory {
		name, err := f.api.ItemName(ctx, slot.Type)
		if err != nil {
			// Unknown item: keep the stack, the armor filter drops it later.
			f.logger.Debug("Item lookup failed", zap.String("item", slot.Type), zap.Error(err))
			name = ""
		}
		_, enchantment := gameinfo.SplitEnchant(slot.Type)
		inventory = append(inventory, InventoryItem{
			ItemName:    name,
			Enchantment: enchantment,
			Count:       slot.Count,
		})
	}
	if len(inventory) == 0 {
		return nil
	}

	return &Death{Date: event.Date, PlayerName: playerName, Inventory: inventory}
}
