package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// History Handler
// ============================================================

// History отдаёт последние конверсии
func (h *Handler) History(c fiber.Ctx) error {
	if h.history == nil {
		return c.JSON([]any{})
	}

	limit := fiber.Query[int](c, "limit", 50)
	records, err := h.history.List(c.Context(), limit)
	if err != nil {
		log.Printf("[HISTORY] List error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list history"})
	}
	return c.JSON(records)
}
