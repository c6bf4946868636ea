package labels

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ============================================================
// Shape labels
// ============================================================

// Ключи каталога. Индекс передаётся строкой, чтобы printer
// не группировал разряды ("Line1,000").
const (
	lineKey = "Line%s"
	quadKey = "Quadrilateral%s"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var translations = []struct {
	tag language.Tag
	key string
	msg string
}{
	{language.English, lineKey, "Line%s"},
	{language.English, quadKey, "Quadrilateral%s"},
	{language.Russian, lineKey, "Линия%s"},
	{language.Russian, quadKey, "Четырёхугольник%s"},
}

var shapeCatalog = mustCatalog()

// newCatalog собирает каталог имён фигур.
func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, t := range translations {
		if err := b.SetString(t.tag, t.key, t.msg); err != nil {
			return nil, fmt.Errorf("register %s %q: %w", t.tag, t.key, err)
		}
	}
	return b, nil
}

func mustCatalog() *catalog.Builder {
	b, err := newCatalog()
	if err != nil {
		panic(err)
	}
	return b
}

// Namer выдаёт отображаемые имена фигур на выбранном языке.
type Namer struct {
	printer *message.Printer
	tag     language.Tag
}

// New подбирает ближайший поддерживаемый язык (по умолчанию английский).
func New(lang string) *Namer {
	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Namer{printer: message.NewPrinter(tag, message.Catalog(shapeCatalog)), tag: tag}
}

// Validate проверяет, что язык поддерживается.
func Validate(lang string) error {
	if lang == "" {
		return nil
	}
	parsed, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", lang, err)
	}
	if _, _, conf := matcher.Match(parsed); conf == language.No {
		return fmt.Errorf("unsupported language %q", lang)
	}
	return nil
}

func (n *Namer) Language() string {
	return n.tag.String()
}

func (n *Namer) Line(idx int) string {
	return n.printer.Sprintf(lineKey, strconv.Itoa(idx))
}

func (n *Namer) Quad(idx int) string {
	return n.printer.Sprintf(quadKey, strconv.Itoa(idx))
}
