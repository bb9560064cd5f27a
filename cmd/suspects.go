package cmd

import (
	"encoding/json"
	"fmt"

	"lootledger/core/config"
	"lootledger/core/gameinfo"
	"lootledger/core/ledger"
	"lootledger/core/logger"
	"lootledger/feature/suspects"

	"github.com/spf13/cobra"
)

// suspectsCmd looks up the lost-loot evidence of one or more players directly.
var suspectsCmd = &cobra.Command{
	Use:   "suspects [player...]",
	Short: "Fetch the lost-loot evidence of one or more players",
	Long: `Fetches the public combat-death histories of the given players and
prints the armor-filtered lost-loot rows as JSON. Useful for checking what
the reconciliation would accept as an innocent explanation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		api := gameinfo.NewClient(cfg.Gameinfo)
		aggregator := suspects.NewAggregator(api, l, cfg.Recon.MaxConcurrency)

		rows := aggregator.LostLoot(cmd.Context(), args)
		out, err := renderRows(rows)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

// renderRows marshals the lost-loot rows for the console. A nil table
// renders as an empty array: "no lost loot" is a result, not an absence.
func renderRows(rows []ledger.Row) ([]byte, error) {
	if rows == nil {
		rows = []ledger.Row{}
	}
	return json.MarshalIndent(rows, "", "  ")
}

func init() {
	RootCmd.AddCommand(suspectsCmd)
}
