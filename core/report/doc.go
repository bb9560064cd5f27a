// Package report exports a reconciliation run as a multi-sheet workbook and
// optionally uploads it to object storage.
//
// The workbook mirrors what officers reviewed by hand before this tool: the
// cleaned distribution ledger, the cleaned withdrawal ledger, and the final
// sheet of missing loot that no death evidence explains.
package report
