package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"

	"blk2json/internal/converter/mapper"
	"blk2json/internal/converter/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Render Handler
// ============================================================

// Render строит SVG-превью из BLK или из готового JSON
func (h *Handler) Render(c fiber.Ctx) error {
	log.Printf("[RENDER] Received request")
	log.Printf("[RENDER] Content-Type: %s", c.Get("Content-Type"))
	log.Printf("[RENDER] Content-Length: %d", len(c.Body()))

	var shapes *models.Collection
	if strings.HasPrefix(c.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		if len(c.Body()) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
		}
		shapes = models.NewCollection()
		if err := json.Unmarshal(c.Body(), shapes); err != nil {
			log.Printf("[RENDER] Decode error: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
		}
	} else {
		in, err := readUpload(c)
		if err != nil {
			return sendError(c, err)
		}
		converter, _, err := h.converterFor(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		shapes, err = converter.Convert(bytes.NewReader(in.data))
		if err != nil {
			log.Printf("[RENDER] Conversion error: %v", err)
			return sendError(c, err)
		}
	}

	svg, err := mapper.NewRenderer().Render(shapes)
	if err != nil {
		log.Printf("[RENDER] Render error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}
