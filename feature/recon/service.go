package recon

import (
	"context"
	"fmt"

	"lootledger/core/ledger"
	"lootledger/core/reconcile"

	"go.uber.org/zap"
)

// Runner executes a full reconciliation over two pre-ingested ledgers.
type Runner interface {
	Run(ctx context.Context, lootLog, chestLog []ledger.Row, parties []string, mode ledger.Mode) *reconcile.Report
}

// Service handles reconciliation operations.
type Service struct {
	engine   Runner
	suspects reconcile.SuspectSource
	logger   *zap.Logger

	// defaultParties is the configured allow-list used when a request
	// does not name its own parties.
	defaultParties []string
}

// NewService creates a new reconciliation service.
func NewService(engine Runner, suspects reconcile.SuspectSource, defaultParties []string, logger *zap.Logger) *Service {
	return &Service{engine: engine, suspects: suspects, defaultParties: defaultParties, logger: logger}
}

// Reconcile ingests both ledger exports and runs the full pipeline.
func (s *Service) Reconcile(ctx context.Context, lootPath, chestPath string, parties []string, mode ledger.Mode) (*reconcile.Report, error) {
	lootLog, err := ledger.ReadDistributionLog(lootPath)
	if err != nil {
		return nil, fmt.Errorf("read distribution log: %w", err)
	}
	chestLog, err := ledger.ReadChestLog(chestPath)
	if err != nil {
		return nil, fmt.Errorf("read chest log: %w", err)
	}

	s.logger.Info("Ledgers ingested",
		zap.Int("distribution_rows", len(lootLog)),
		zap.Int("chest_rows", len(chestLog)),
	)
	return s.engine.Run(ctx, lootLog, chestLog, parties, mode), nil
}

// SuspectLoot returns the armor-filtered lost-loot rows of a single player.
func (s *Service) SuspectLoot(ctx context.Context, player string) []ledger.Row {
	return s.suspects.LostLoot(ctx, []string{player})
}
