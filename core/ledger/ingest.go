package ledger

import (
	"fmt"
	"strings"
	"time"

	"lootledger/core/utils"

	"github.com/xuri/excelize/v2"
)

// Column layouts of the two exports. Both files carry a header row which
// is skipped; the columns are expected in exactly this order.
const (
	distColumns  = 10 // row-id, date, alliance, guild, player, item-id, item-name, enchantment, amount, victim
	chestColumns = 6  // date, player, item-name, enchantment, quality, amount
)

// dateLayouts are the timestamp formats the game client writes into exports.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01-02-06 15:04",
	"1/2/06 15:04",
	"01/02/2006 15:04:05",
}

// ReadDistributionLog reads a loot-distribution export. The row-id, item-id
// and victim columns are dropped, and the "<n>x - " prefix the exporter puts
// in front of item names is stripped.
func ReadDistributionLog(path string) ([]Row, error) {
	records, err := readSheet(path)
	if err != nil {
		return nil, fmt.Errorf("distribution log: %w", err)
	}

	var rows []Row
	for i, cells := range records {
		if i == 0 {
			continue // header
		}
		if len(cells) < distColumns-1 || cell(cells, 1) == "" {
			continue
		}
		date, err := parseDate(cell(cells, 1))
		if err != nil {
			return nil, fmt.Errorf("distribution log row %d: %w", i+1, err)
		}
		rows = append(rows, Row{
			Date:        date,
			Alliance:    cell(cells, 2),
			Guild:       cell(cells, 3),
			PlayerName:  cell(cells, 4),
			ItemName:    cleanItemName(cell(cells, 6)),
			Enchantment: utils.ToInt(cell(cells, 7)),
			Amount:      utils.ToInt(cell(cells, 8)),
		})
	}
	return rows, nil
}

// ReadChestLog reads a storage-chest withdrawal export. The quality column
// is dropped.
func ReadChestLog(path string) ([]Row, error) {
	records, err := readSheet(path)
	if err != nil {
		return nil, fmt.Errorf("chest log: %w", err)
	}

	var rows []Row
	for i, cells := range records {
		if i == 0 {
			continue // header
		}
		if len(cells) < chestColumns-1 || cell(cells, 0) == "" {
			continue
		}
		date, err := parseDate(cell(cells, 0))
		if err != nil {
			return nil, fmt.Errorf("chest log row %d: %w", i+1, err)
		}
		rows = append(rows, Row{
			Date:        date,
			PlayerName:  cell(cells, 1),
			ItemName:    cell(cells, 2),
			Enchantment: utils.ToInt(cell(cells, 3)),
			Amount:      utils.ToInt(cell(cells, 5)),
		})
	}
	return rows, nil
}

// readSheet opens a workbook and returns all rows of its first sheet.
func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return records, nil
}

// cleanItemName strips the "<n>x - " quantity prefix from distribution
// item names. Names without the separator are returned unchanged.
func cleanItemName(name string) string {
	if _, after, found := strings.Cut(name, " - "); found {
		return after
	}
	return name
}

// parseDate tries the known export timestamp layouts.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", raw)
}

// cell returns the trimmed cell at index i, or "" when the exporter
// truncated trailing empty cells.
func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
