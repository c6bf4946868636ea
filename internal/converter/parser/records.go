package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"blk2json/internal/converter/labels"
	"blk2json/internal/converter/models"
)

// ============================================================
// Record patterns
// ============================================================

var (
	lineRe = regexp.MustCompile(`(?i)line\s*\{\s*line\s*:\s*p4\s*=\s*([^;]+);\s*move\s*:\s*b\s*=\s*(true|false)\s*;\s*\}`)
	quadRe = regexp.MustCompile(`(?i)quad\s*\{` +
		`\s*tl\s*:\s*p2\s*=\s*([^;]+);` +
		`\s*tr\s*:\s*p2\s*=\s*([^;]+);` +
		`\s*br\s*:\s*p2\s*=\s*([^;]+);` +
		`\s*bl\s*:\s*p2\s*=\s*([^;]+);\s*\}`)
)

const (
	lineArity   = 4
	cornerArity = 2
)

// ============================================================
// Record Parser
// ============================================================

type options struct {
	namer *labels.Namer
}

type Option func(*options)

// WithNamer задаёт генератор имён фигур.
func WithNamer(n *labels.Namer) Option {
	return func(o *options) {
		o.namer = n
	}
}

// ParseRecords разбирает все записи line{...} и quad{...} в тексте.
// Сначала линии, затем четырёхугольники; счётчик индексов общий.
// Любая ошибка в координатах прерывает разбор целиком.
func ParseRecords(text string, opts ...Option) (*models.Collection, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.namer == nil {
		o.namer = labels.New("")
	}

	result := models.NewCollection()
	idx := 0

	for _, m := range lineRe.FindAllStringSubmatch(text, -1) {
		coords, err := parseCoords(m[1], lineArity, models.TypeLine)
		if err != nil {
			return nil, err
		}

		result.Add(models.NewLine(
			o.namer.Line(idx),
			models.Point{X: coords[0], Y: coords[1]},
			models.Point{X: coords[2], Y: coords[3]},
		))
		idx++
	}

	for _, m := range quadRe.FindAllStringSubmatch(text, -1) {
		var corners [4]models.Point
		for i := range corners {
			coords, err := parseCoords(m[i+1], cornerArity, models.TypeQuad)
			if err != nil {
				return nil, err
			}
			corners[i] = models.Point{X: coords[0], Y: coords[1]}
		}

		result.Add(models.NewQuad(o.namer.Quad(idx), corners))
		idx++
	}

	return result, nil
}

// parseCoords разбивает "x1, y1, ..." по запятым и проверяет число компонент.
func parseCoords(raw string, arity int, shape string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, ",")

	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		v, err := parseNumber(part)
		if err != nil {
			return nil, &MalformedCoordinatesError{Raw: raw, Value: part}
		}
		coords = append(coords, v)
	}

	if len(coords) != arity {
		return nil, &InvalidArityError{Shape: shape, Raw: raw, Expected: arity, Found: len(coords)}
	}
	return coords, nil
}

// parseNumber принимает только конечные десятичные числа: без NaN/Inf,
// шестнадцатеричной записи и разделителей "_".
func parseNumber(s string) (float64, error) {
	if strings.ContainsAny(s, "xX_") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
