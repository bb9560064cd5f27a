// Package gameinfo provides a client for the public game-data REST API.
//
// It covers the four endpoints the reconciliation pipeline needs: item display
// names, player search, a player's death-event identifiers, and the full detail
// of a single event. All calls are read-only and the upstream service is
// treated as stateless and idempotent.
//
// # Error Policy
//
// Every method returns an explicit error. The API is public and frequently
// degraded, so callers higher up the pipeline (see feature/suspects) map
// failures to empty results rather than aborting a run. ErrNotFound
// distinguishes "the API answered with no data" from transport failures.
//
// # Timeouts
//
// A single per-request timeout (Config.TimeoutSeconds) bounds every call.
// There is no retry and no backoff.
//
// # Usage
//
//	client := gameinfo.NewClient(cfg.Gameinfo)
//	id, err := client.PlayerID(ctx, "SomePlayer")
package gameinfo
