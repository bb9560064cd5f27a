package cmd

import (
	"fmt"
	"strings"

	"lootledger/core/config"
	"lootledger/core/gameinfo"
	"lootledger/core/ledger"
	"lootledger/core/logger"
	"lootledger/core/reconcile"
	"lootledger/core/report"
	"lootledger/core/storage"
	"lootledger/feature/recon"
	"lootledger/feature/suspects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	lootLogPath  string
	chestLogPath string
	outputFile   string
	filterMode   string
	partyList    string
	uploadReport bool
)

// reconcileCmd runs the full reconciliation pipeline and writes the report workbook.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a distribution log against a chest log",
	Long: `Reconcile a loot-distribution export against a storage-chest export.

Loot that was handed out but never withdrawn is cross-referenced against the
recipients' public combat deaths; whatever no death explains ends up on the
final report sheet.

Examples:
  # Reconcile for the default guild
  lootledger reconcile --loot-log loot.xlsx --chest-log chest.xlsx

  # Filter by alliances instead of guilds
  lootledger reconcile --loot-log loot.xlsx --chest-log chest.xlsx --mode alliance --parties SURF

  # Upload the report workbook to the configured bucket
  lootledger reconcile --loot-log loot.xlsx --chest-log chest.xlsx --upload`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&lootLogPath, "loot-log", "", "Path to the loot distribution export (required)")
	reconcileCmd.Flags().StringVar(&chestLogPath, "chest-log", "", "Path to the chest withdrawal export (required)")
	reconcileCmd.Flags().StringVar(&outputFile, "output", "", "Report workbook filename (default from config)")
	reconcileCmd.Flags().StringVar(&filterMode, "mode", "", "Party filter mode: guild or alliance (default from config)")
	reconcileCmd.Flags().StringVar(&partyList, "parties", "", "Comma-separated party allow-list (default from config)")
	reconcileCmd.Flags().BoolVar(&uploadReport, "upload", false, "Upload the report workbook to object storage")
	_ = reconcileCmd.MarkFlagRequired("loot-log")
	_ = reconcileCmd.MarkFlagRequired("chest-log")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	mode := ledger.Mode(firstNonEmpty(filterMode, cfg.Recon.Mode))
	if !mode.IsValid() {
		return fmt.Errorf("invalid mode %q: must be guild or alliance", mode)
	}
	parties := splitList(firstNonEmpty(partyList, cfg.Recon.Parties))
	output := firstNonEmpty(outputFile, cfg.Recon.Output)

	l.Info("Starting reconciliation",
		zap.String("mode", string(mode)),
		zap.Strings("parties", parties),
	)

	api := gameinfo.NewClient(cfg.Gameinfo)
	aggregator := suspects.NewAggregator(api, l, cfg.Recon.MaxConcurrency)
	engine := reconcile.NewEngine(aggregator, l)
	svc := recon.NewService(engine, aggregator, parties, l)

	rep, err := svc.Reconcile(ctx, lootLogPath, chestLogPath, parties, mode)
	if err != nil {
		return err
	}

	if err := report.Write(output, rep); err != nil {
		return err
	}
	l.Info("Report written",
		zap.String("file", output),
		zap.Int("ratted_rows", len(rep.RattedLoot)),
	)

	if uploadReport || cfg.Storage.Upload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := report.Upload(ctx, client, cfg.Storage.Bucket, output); err != nil {
			return err
		}
		l.Info("Report uploaded", zap.String("bucket", cfg.Storage.Bucket))
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
