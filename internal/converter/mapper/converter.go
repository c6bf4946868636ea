package mapper

import (
	"fmt"
	"io"

	"blk2json/internal/converter/labels"
	"blk2json/internal/converter/models"
	"blk2json/internal/converter/parser"
)

// ============================================================
// Converter
// ============================================================

type Converter struct {
	namer *labels.Namer
	order models.KeyOrder
}

type Option func(*Converter)

// WithLanguage задаёт язык имён фигур ("en", "ru").
func WithLanguage(lang string) Option {
	return func(c *Converter) {
		c.namer = labels.New(lang)
	}
}

// WithKeyOrder задаёт порядок ключей в итоговом JSON.
func WithKeyOrder(order models.KeyOrder) Option {
	return func(c *Converter) {
		c.order = order
	}
}

func New(opts ...Option) *Converter {
	c := &Converter{
		namer: labels.New(""),
		order: models.OrderNumeric,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert BLK → коллекция фигур
func (c *Converter) Convert(r io.Reader) (*models.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return c.ConvertString(string(data))
}

// ConvertString разбирает уже прочитанный текст.
func (c *Converter) ConvertString(text string) (*models.Collection, error) {
	combined := parser.CombineBlocks(text)

	shapes, err := parser.ParseRecords(combined, parser.WithNamer(c.namer))
	if err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	shapes.SetOrder(c.order)

	return shapes, nil
}

// ConvertToJSON — Convert + Encode.
func (c *Converter) ConvertToJSON(r io.Reader) ([]byte, *models.Collection, error) {
	shapes, err := c.Convert(r)
	if err != nil {
		return nil, nil, err
	}
	data, err := Encode(shapes)
	if err != nil {
		return nil, nil, err
	}
	return data, shapes, nil
}
