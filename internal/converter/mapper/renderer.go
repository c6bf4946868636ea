package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"blk2json/internal/converter/models"
)

// ============================================================
// Renderer
// ============================================================

const defaultCanvas = 1000

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render собирает SVG-превью из коллекции фигур.
func (r *Renderer) Render(shapes *models.Collection) (string, error) {
	if shapes == nil {
		return "", fmt.Errorf("shapes are nil")
	}

	minX, minY, width, height := r.bounds(shapes)

	var elements []string
	for _, e := range shapes.Entries() {
		switch s := e.Shape.(type) {
		case *models.Line:
			elements = append(elements, r.renderLine(e.Key, s))
		case *models.Quad:
			elements = append(elements, r.renderQuad(e.Key, s))
		default:
			return "", fmt.Errorf("shape %s: unsupported type %T", e.Key, e.Shape)
		}
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		formatFloat(width), formatFloat(height), formatFloat(minX), formatFloat(minY), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Sizing
// ============================================================

func (r *Renderer) bounds(shapes *models.Collection) (float64, float64, float64, float64) {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64

	for _, e := range shapes.Entries() {
		for _, p := range e.Shape.Points() {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}

	if minX == math.MaxFloat64 || minY == math.MaxFloat64 {
		return 0, 0, defaultCanvas, defaultCanvas
	}

	width := maxX - minX
	height := maxY - minY
	if width <= 0 {
		width = defaultCanvas
	}
	if height <= 0 {
		height = defaultCanvas
	}

	return minX, minY, width, height
}

// ============================================================
// Element renderers
// ============================================================

func (r *Renderer) renderLine(key string, l *models.Line) string {
	return fmt.Sprintf(`<line id="shape-%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="#000" />`,
		key, formatFloat(l.Start.X), formatFloat(l.Start.Y), formatFloat(l.End.X), formatFloat(l.End.Y))
}

func (r *Renderer) renderQuad(key string, q *models.Quad) string {
	points := q.Points()

	var path strings.Builder
	path.WriteString(`<path id="shape-`)
	path.WriteString(key)
	path.WriteString(`" d="M `)
	path.WriteString(formatPoint(points[0]))
	for _, p := range points[1:] {
		path.WriteString(" L ")
		path.WriteString(formatPoint(p))
	}
	path.WriteString(` Z" fill="none" stroke="#888" />`)

	return path.String()
}

// ============================================================
// Formatting helpers
// ============================================================

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func formatPoint(p models.Point) string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}
