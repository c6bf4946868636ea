package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

// LivenessProbe проверяет, что процесс отвечает
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// Ready отвечает 503, пока база истории недоступна.
// Без истории сервис готов сразу.
func (h *Handler) Ready(c fiber.Ctx) error {
	if h.history == nil {
		return c.JSON(fiber.Map{"status": "ready", "history": "disabled"})
	}

	if _, err := h.history.List(c.Context(), 1); err != nil {
		log.Printf("[HISTORY] Readiness check failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  "history store unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ready", "history": "ok"})
}
