package report

import (
	"io"
	"strconv"

	"blk2json/internal/history/models"

	"github.com/nao1215/markdown"
)

// ============================================================
// Markdown History Report
// ============================================================

// WriteMarkdown печатает таблицу конверсий в формате Markdown.
func WriteMarkdown(w io.Writer, records []models.Record) error {
	md := markdown.NewMarkdown(w)
	md.H1("Conversion History")
	md.PlainText("")

	if len(records) == 0 {
		md.Note("No conversions recorded yet.")
		return md.Build()
	}

	rows := make([][]string, 0, len(records))
	lines, quads := 0, 0
	for _, rec := range records {
		rows = append(rows, []string{
			rec.CreatedAt,
			"`" + rec.Source + "`",
			strconv.Itoa(rec.Lines),
			strconv.Itoa(rec.Quads),
			rec.KeyOrder,
			outputCell(rec.Output),
		})
		lines += rec.Lines
		quads += rec.Quads
	}

	md.Table(markdown.TableSet{
		Header: []string{"Date", "Source", "Lines", "Quads", "Order", "Output"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainTextf("%d conversions, %d lines, %d quads", len(records), lines, quads)

	return md.Build()
}

func outputCell(path string) string {
	if path == "" {
		return "-"
	}
	return "`" + path + "`"
}
