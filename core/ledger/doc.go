// Package ledger defines the ledger row model, the domain filters shared by
// both ledgers, and the ingestion of the game client's spreadsheet exports.
//
// # Filters
//
// Three pure filters are applied before reconciliation:
//   - FilterParties: restrict to an allow-list of guild or alliance names
//   - FilterRemovals: drop negative-amount withdrawal rows
//   - FilterArmor: restrict to gear by tier-name matching, excluding
//     non-armor categories that share tier naming (runes, bags, mounts, ...)
//
// All filters operate on copies, are order-independent, and are idempotent.
//
// # Ingestion
//
// ReadDistributionLog and ReadChestLog read the two xlsx exports with their
// fixed column orders and reduce them to []Row. Column renaming, dropped
// columns, and the quantity prefix on distribution item names are handled
// here so the reconciliation engine only ever sees clean rows.
package ledger
