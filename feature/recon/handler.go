package recon

import (
	"lootledger/core/ledger"
	"lootledger/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/reconcile", h.HandleReconcile)
	app.Get("/suspects/:player", h.HandleSuspectLoot)
}

type reconcileRequest struct {
	// LootLog is the server-side path of the distribution export.
	LootLog string `json:"loot_log"`
	// ChestLog is the server-side path of the withdrawal export.
	ChestLog string `json:"chest_log"`
	// Parties is the guild/alliance allow-list.
	Parties []string `json:"parties"`
	// Mode is "guild" or "alliance".
	Mode string `json:"mode"`
}

// HandleReconcile runs a full reconciliation over two uploaded ledger
// exports and returns the report as JSON.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req reconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	parties := req.Parties
	if len(parties) == 0 {
		// Same fallback the CLI applies: omitted parties mean the
		// configured allow-list.
		parties = h.service.defaultParties
	}
	if req.LootLog == "" || req.ChestLog == "" || len(parties) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "loot_log, chest_log and parties are required",
		})
	}
	mode := ledger.Mode(req.Mode)
	if req.Mode == "" {
		mode = ledger.ModeGuild
	}
	if !mode.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "mode must be guild or alliance",
		})
	}

	rep, err := h.service.Reconcile(c.Context(), req.LootLog, req.ChestLog, parties, mode)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rep)
}

// HandleSuspectLoot returns the lost-loot rows of a single player.
func (h *Handler) HandleSuspectLoot(c *fiber.Ctx) error {
	player := c.Params("player")
	rows := h.service.SuspectLoot(c.Context(), player)

	return c.JSON(fiber.Map{
		"player":    player,
		"lost_loot": rows,
	})
}
