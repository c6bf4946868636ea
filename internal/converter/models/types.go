package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ============================================================
// Shapes
// ============================================================

const (
	TypeLine = "line"
	TypeQuad = "quad"
)

// Shape — линия или четырёхугольник.
type Shape interface {
	ShapeType() string
	ShapeName() string
	Points() []Point
}

type Line struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Start    Point  `json:"start"`
	End      Point  `json:"end"`
	Selected bool   `json:"selected"`
}

func NewLine(name string, start, end Point) *Line {
	return &Line{Name: name, Type: TypeLine, Start: start, End: end}
}

func (l *Line) ShapeType() string { return TypeLine }
func (l *Line) ShapeName() string { return l.Name }
func (l *Line) Points() []Point   { return []Point{l.Start, l.End} }

// Quad хранит углы в порядке tl, tr, br, bl.
type Quad struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Pos1     Point  `json:"pos1"`
	Pos2     Point  `json:"pos2"`
	Pos3     Point  `json:"pos3"`
	Pos4     Point  `json:"pos4"`
	Selected bool   `json:"selected"`
}

func NewQuad(name string, corners [4]Point) *Quad {
	return &Quad{
		Name: name,
		Type: TypeQuad,
		Pos1: corners[0],
		Pos2: corners[1],
		Pos3: corners[2],
		Pos4: corners[3],
	}
}

func (q *Quad) ShapeType() string { return TypeQuad }
func (q *Quad) ShapeName() string { return q.Name }
func (q *Quad) Points() []Point   { return []Point{q.Pos1, q.Pos2, q.Pos3, q.Pos4} }

// ============================================================
// Key order
// ============================================================

type KeyOrder string

const (
	// OrderNumeric — по возрастанию индекса (совпадает с порядком вставки).
	OrderNumeric KeyOrder = "numeric"
	// OrderLexical — строковая сортировка ключей: "10" идёт раньше "2".
	OrderLexical KeyOrder = "lexical"
)

// ParseKeyOrder понимает "numeric", "lexical" и пустую строку (numeric).
func ParseKeyOrder(s string) (KeyOrder, error) {
	switch KeyOrder(s) {
	case "", OrderNumeric:
		return OrderNumeric, nil
	case OrderLexical:
		return OrderLexical, nil
	}
	return "", fmt.Errorf("unknown key order %q", s)
}

// ============================================================
// Collection
// ============================================================

type Entry struct {
	Key   string
	Shape Shape
}

// Collection — упорядоченное отображение индекс -> фигура.
type Collection struct {
	entries []Entry
	order   KeyOrder
}

func NewCollection() *Collection {
	return &Collection{order: OrderNumeric}
}

// Add добавляет фигуру под следующим индексом и возвращает ключ.
func (c *Collection) Add(s Shape) string {
	key := strconv.Itoa(len(c.entries))
	c.entries = append(c.entries, Entry{Key: key, Shape: s})
	return key
}

func (c *Collection) Len() int {
	return len(c.entries)
}

func (c *Collection) Get(key string) (Shape, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(c.entries) || c.entries[i].Key != key {
		return nil, false
	}
	return c.entries[i].Shape, true
}

// SetOrder задаёт порядок ключей при сериализации.
func (c *Collection) SetOrder(order KeyOrder) {
	c.order = order
}

func (c *Collection) Order() KeyOrder {
	return c.order
}

// Entries возвращает копию записей в порядке сериализации.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	if c.order == OrderLexical {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	}
	return out
}

// Count считает фигуры указанного типа.
func (c *Collection) Count(shapeType string) int {
	n := 0
	for _, e := range c.entries {
		if e.Shape.ShapeType() == shapeType {
			n++
		}
	}
	return n
}

func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Shape)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON восстанавливает коллекцию по полю "type" каждой фигуры.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	keys := make([]int, 0, len(raw))
	for k := range raw {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || strconv.Itoa(i) != k {
			return fmt.Errorf("invalid shape key %q", k)
		}
		keys = append(keys, i)
	}
	sort.Ints(keys)

	c.entries = c.entries[:0]
	if c.order == "" {
		c.order = OrderNumeric
	}
	for want, i := range keys {
		if i != want {
			return fmt.Errorf("shape keys are not contiguous: missing %d", want)
		}
		msg := raw[strconv.Itoa(i)]

		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return err
		}

		var s Shape
		switch head.Type {
		case TypeLine:
			s = &Line{}
		case TypeQuad:
			s = &Quad{}
		default:
			return fmt.Errorf("shape %d: unknown type %q", i, head.Type)
		}
		if err := json.Unmarshal(msg, s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		c.Add(s)
	}
	return nil
}
