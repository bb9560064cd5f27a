// Package reconcile implements the loot reconciliation engine.
//
// The engine answers one question in three steps: which loot was handed out
// but never made it into the guild chest, and of that, which can be written
// off as lost to a combat death?
//
//  1. MissingLoot anti-joins the cleaned distribution ledger against the
//     cleaned withdrawal ledger on the (player, item) composite key, inside
//     a time window that extends two hours past the last handout.
//  2. The distinct players named in the missing-loot table are handed to a
//     SuspectSource (see feature/suspects) which aggregates their public
//     death inventories concurrently.
//  3. Reconcile removes the missing rows explained by that evidence. The
//     player and item matches are applied as independent set-membership
//     filters combined by intersection; with no evidence at all, the whole
//     missing-loot table is reported.
//
// The engine never fails a run: degraded external lookups and empty tables
// only ever make the report more conservative.
package reconcile
