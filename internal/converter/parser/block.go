package parser

import (
	"regexp"
)

// ============================================================
// Block Extractor
// ============================================================

// Имена блоков верхнего уровня.
const (
	LinesBlock = "drawLines"
	QuadsBlock = "drawQuads"
)

// ExtractBlock возвращает тело первого блока name { ... } без внешних скобок.
// Вложенные скобки учитываются счётчиком глубины. Если блок не найден или
// не закрыт, возвращается пустая строка.
func ExtractBlock(text, name string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(name) + `\s*\{`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	start := loc[1]
	depth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start:i]
			}
		}
	}
	return ""
}

// CombineBlocks склеивает тела drawLines и drawQuads через перевод строки.
func CombineBlocks(text string) string {
	return ExtractBlock(text, LinesBlock) + "\n" + ExtractBlock(text, QuadsBlock)
}
