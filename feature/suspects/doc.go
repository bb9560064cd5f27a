// Package suspects fetches the public combat-death histories of players
// implicated by the missing-loot table and reduces them to a flat lost-loot
// table for the reconciliation engine.
//
// # Pipeline
//
// For each suspect the Fetcher runs a sequential pipeline (resolve player
// id, list death-event ids) that fans out one goroutine per death event for
// the detail fetches. The Aggregator runs one such pipeline per suspect,
// also concurrently, and joins everything before merging.
//
// # Failure Policy
//
// The upstream API is public and best-effort. Every failed lookup (player
// search, death list, event detail, item name) is logged at debug level and
// shrinks the result set; nothing aborts a run. The worst case is an empty
// lost-loot table, which the engine treats as "everything remains suspect".
//
// # Concurrency
//
// Goroutines write only their own pre-reserved result slot and are joined
// before any aggregation reads them. An optional cap bounds the per-player
// fan-out; the default is unbounded to match the per-request-timeout-only
// resource model.
package suspects
