package handlers

import (
	"bytes"
	"errors"
	"log"

	"blk2json/internal/converter/models"
	historymodels "blk2json/internal/history/models"

	"github.com/gofiber/fiber/v3"
)

var errSaveDisabled = errors.New("saving is not configured on this server")

// ============================================================
// Convert Handler
// ============================================================

// Convert конвертирует BLK в JSON
func (h *Handler) Convert(c fiber.Ctx) error {
	log.Printf("[CONVERTER] Received request")
	log.Printf("[CONVERTER] Content-Type: %s", c.Get("Content-Type"))
	log.Printf("[CONVERTER] Content-Length: %d", len(c.Body()))

	in, err := readUpload(c)
	if err != nil {
		log.Printf("[CONVERTER] Input error: %v", err)
		return sendError(c, err)
	}

	converter, order, err := h.converterFor(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[CONVERTER] Starting conversion of %s, data size: %d bytes", in.name, len(in.data))
	data, shapes, err := converter.ConvertToJSON(bytes.NewReader(in.data))
	if err != nil {
		log.Printf("[CONVERTER] Conversion error: %v", err)
		return sendError(c, err)
	}

	output := ""
	if fiber.Query[bool](c, "save") {
		if h.storage == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": errSaveDisabled.Error()})
		}
		output, err = h.storage.SaveJSON(in.name, data)
		if err != nil {
			log.Printf("[CONVERTER] Save error: %v", err)
			return sendError(c, err)
		}
		c.Set("X-Output-File", output)
	}

	h.record(c, in.name, output, order, shapes)

	log.Printf("[CONVERTER] Conversion successful: %d shapes", shapes.Len())
	c.Set("Content-Type", fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

func (h *Handler) record(c fiber.Ctx, source, output string, order models.KeyOrder, shapes *models.Collection) {
	if h.history == nil {
		return
	}

	rec, err := h.history.Save(c.Context(), historymodels.Record{
		Source:   source,
		Output:   output,
		Lines:    shapes.Count(models.TypeLine),
		Quads:    shapes.Count(models.TypeQuad),
		KeyOrder: string(order),
	})
	if err != nil {
		log.Printf("[HISTORY] Save error: %v", err)
		return
	}
	c.Set("X-Conversion-ID", rec.ID)
}
