package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Routes
// ============================================================

// Register вешает маршруты конвертера на приложение.
func Register(app *fiber.App, h *Handler) {
	app.Get("/health/live", LivenessProbe)
	app.Get("/health/ready", h.Ready)

	app.Post("/convert", h.Convert)
	app.Post("/render", h.Render)
	app.Get("/history", h.History)
}
