package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lootledger/core/ledger"
	"lootledger/core/reconcile"
	"lootledger/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook. The final report keeps the
// historical "missing_loot" name even though it holds the reconciled rows.
const (
	SheetLootLog  = "clean_loot_log"
	SheetChestLog = "clean_chest_log"
	SheetReport   = "missing_loot"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"Date", "Player Name", "Item Name", "Enchantment", "Amount"}

// Write exports the report as a three-sheet workbook: both cleaned ledgers
// and the final reconciled rows.
func Write(path string, rep *reconcile.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows []ledger.Row
	}{
		{SheetLootLog, rep.LootLog},
		{SheetChestLog, rep.ChestLog},
		{SheetReport, rep.RattedLoot},
	}

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return fmt.Errorf("report: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("report: create sheet %s: %w", sheet.name, err)
		}
		if err := writeSheet(f, sheet.name, sheet.rows); err != nil {
			return fmt.Errorf("report: fill sheet %s: %w", sheet.name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save workbook: %w", err)
	}
	return nil
}

// Upload pushes a written workbook to the configured bucket, creating the
// bucket if needed. The object name is the workbook's base filename.
func Upload(ctx context.Context, client storage.Client, bucket, path string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("report: check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("report: create bucket: %w", err)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("report: open workbook: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("report: stat workbook: %w", err)
	}

	_, err = client.PutObject(ctx, bucket, filepath.Base(path), file, stat.Size(),
		minio.PutObjectOptions{ContentType: xlsxContentType})
	if err != nil {
		return fmt.Errorf("report: upload workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, rows []ledger.Row) error {
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			row.Date.Format("2006-01-02 15:04:05"),
			row.PlayerName,
			row.ItemName,
			row.Enchantment,
			row.Amount,
		}
		if err := f.SetSheetRow(name, cellRef, &values); err != nil {
			return err
		}
	}
	return nil
}
