package gameinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrNotFound indicates the API answered but had no data for the query
// (unknown item id, no player matching a search, missing localization).
var ErrNotFound = errors.New("gameinfo: not found")

// Client defines the interface for the public game-data API.
// Every call is bounded by the configured per-request timeout; callers are
// expected to map failures to empty results at their own boundary.
type Client interface {
	// ItemName resolves an item identifier (optionally carrying an
	// enchantment suffix) to its localized display name.
	ItemName(ctx context.Context, itemID string) (string, error)
	// PlayerID resolves a player name to the identifier of the first
	// search match. The first match is authoritative.
	PlayerID(ctx context.Context, name string) (string, error)
	// DeathEvents lists the death-event identifiers of a player.
	DeathEvents(ctx context.Context, playerID string) ([]int64, error)
	// Event fetches the detail of a single kill/death event.
	Event(ctx context.Context, eventID int64) (*Event, error)
}

// Event is the normalized detail of a death event: when it happened and
// what the victim was carrying. Inventory slots the API reports as null
// are already removed.
type Event struct {
	Date      time.Time
	Inventory []InventoryRef
}

// InventoryRef is a raw inventory slot as reported by the event detail
// endpoint. Type encodes "baseItemId" or "baseItemId@enchantmentLevel".
type InventoryRef struct {
	Type  string
	Count int
}

// SplitEnchant splits the enchantment suffix off a raw item identifier.
// It returns the base identifier and the encoded level (0 if none).
func SplitEnchant(itemType string) (string, int) {
	base, suffix, found := strings.Cut(itemType, "@")
	if !found {
		return itemType, 0
	}
	level, err := strconv.Atoi(suffix)
	if err != nil {
		return base, 0
	}
	return base, level
}

// HTTPClient talks to the gameinfo REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
}

// NewClient creates a gameinfo client from the configuration.
func NewClient(cfg Config) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 5
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// ItemName resolves an item identifier to its EN-US display name. The
// enchantment suffix does not change the name, so the lookup is performed
// on the base identifier; concurrent lookups of the same base are
// collapsed into a single request via singleflight, nothing is cached
// between calls.
func (c *HTTPClient) ItemName(ctx context.Context, itemID string) (string, error) {
	base, _ := SplitEnchant(itemID)

	name, err, _ := c.group.Do(base, func() (interface{}, error) {
		var payload struct {
			LocalizedNames map[string]string `json:"localizedNames"`
		}
		if err := c.getJSON(ctx, "/items/"+url.PathEscape(base)+"/data", &payload); err != nil {
			return "", err
		}
		display, ok := payload.LocalizedNames["EN-US"]
		if !ok || display == "" {
			return "", ErrNotFound
		}
		return display, nil
	})
	if err != nil {
		return "", err
	}
	return name.(string), nil
}

// PlayerID resolves a player name via the search endpoint. The first
// result is taken; an empty result list maps to ErrNotFound.
func (c *HTTPClient) PlayerID(ctx context.Context, name string) (string, error) {
	var payload struct {
		Players []struct {
			ID string `json:"Id"`
		} `json:"players"`
	}
	if err := c.getJSON(ctx, "/search?q="+url.QueryEscape(name), &payload); err != nil {
		return "", err
	}
	if len(payload.Players) == 0 {
		return "", ErrNotFound
	}
	return payload.Players[0].ID, nil
}

// DeathEvents lists the identifiers of every recorded death of a player.
func (c *HTTPClient) DeathEvents(ctx context.Context, playerID string) ([]int64, error) {
	var payload []struct {
		EventID int64 `json:"EventId"`
	}
	if err := c.getJSON(ctx, "/players/"+url.PathEscape(playerID)+"/deaths", &payload); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(payload))
	for _, death := range payload {
		ids = append(ids, death.EventID)
	}
	return ids, nil
}

// Event fetches a single event and reduces it to its timestamp and the
// victim's non-null inventory slots.
func (c *HTTPClient) Event(ctx context.Context, eventID int64) (*Event, error) {
	var payload struct {
		TimeStamp string `json:"TimeStamp"`
		Victim    struct {
			Inventory []*struct {
				Type  string `json:"Type"`
				Count int    `json:"Count"`
			} `json:"Inventory"`
		} `json:"Victim"`
	}
	if err := c.getJSON(ctx, "/events/"+strconv.FormatInt(eventID, 10), &payload); err != nil {
		return nil, err
	}

	date, err := parseTimestamp(payload.TimeStamp)
	if err != nil {
		return nil, fmt.Errorf("gameinfo: event %d: %w", eventID, err)
	}

	event := &Event{Date: date}
	for _, slot := range payload.Victim.Inventory {
		if slot == nil {
			continue
		}
		event.Inventory = append(event.Inventory, InventoryRef{Type: slot.Type, Count: slot.Count})
	}
	return event, nil
}

// getJSON performs a GET against the API and decodes the JSON body.
func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("gameinfo: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gameinfo: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gameinfo: unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gameinfo: decode response: %w", err)
	}
	return nil
}

// parseTimestamp handles the event timestamp format, which carries
// sub-second precision and does not always include a zone suffix.
func parseTimestamp(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, strings.TrimSuffix(raw, "Z")); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", raw)
}
