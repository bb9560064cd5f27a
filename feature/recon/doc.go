// Package recon exposes the reconciliation pipeline over HTTP.
//
// It follows the feature layout used across the codebase: a Service holding
// the business logic, a Handler translating Fiber requests, and a Feature
// wiring both into the loader.
//
// # Routes
//
//   - POST /reconcile: run a full reconciliation over two ledger exports
//   - GET /suspects/:player: fetch one player's lost-loot evidence
package recon
