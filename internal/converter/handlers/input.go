package handlers

import (
	"errors"
	"io"
	"strings"

	"blk2json/internal/converter/labels"
	"blk2json/internal/converter/mapper"
	"blk2json/internal/converter/models"
	"blk2json/internal/converter/parser"

	"github.com/gofiber/fiber/v3"
)

const defaultSourceName = "input.blk"

var errNoInput = errors.New("file required in multipart/form-data or request body")

// ============================================================
// Input helpers
// ============================================================

type upload struct {
	name string
	data []byte
}

// readUpload берёт поле file из multipart или сырое тело запроса.
func readUpload(c fiber.Ctx) (*upload, error) {
	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		file, err := c.FormFile("file")
		if err != nil {
			return nil, errNoInput
		}

		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return &upload{name: file.Filename, data: data}, nil
	}

	if len(c.Body()) == 0 {
		return nil, errNoInput
	}

	name := c.Query("name", defaultSourceName)
	data := make([]byte, len(c.Body()))
	copy(data, c.Body())
	return &upload{name: name, data: data}, nil
}

// converterFor собирает конвертер из query-параметров order и lang.
func (h *Handler) converterFor(c fiber.Ctx) (*mapper.Converter, models.KeyOrder, error) {
	order, err := models.ParseKeyOrder(c.Query("order", string(h.order)))
	if err != nil {
		return nil, "", err
	}

	lang := c.Query("lang", h.lang)
	if err := labels.Validate(lang); err != nil {
		return nil, "", err
	}

	return mapper.New(mapper.WithKeyOrder(order), mapper.WithLanguage(lang)), order, nil
}

func errorStatus(err error) int {
	switch {
	case parser.IsParseError(err):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errNoInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, parser.ErrMalformedCoordinates):
		return "malformed_coordinates"
	case errors.Is(err, parser.ErrInvalidArity):
		return "invalid_arity"
	default:
		return ""
	}
}

func sendError(c fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if kind := errorKind(err); kind != "" {
		body["kind"] = kind
	}
	return c.Status(errorStatus(err)).JSON(body)
}
