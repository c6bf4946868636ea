package models

// ============================================================
// Conversion Record
// ============================================================

type Record struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Output    string `json:"output"`
	Lines     int    `json:"lines"`
	Quads     int    `json:"quads"`
	KeyOrder  string `json:"key_order"`
	CreatedAt string `json:"created_at"`
}

func (r Record) Total() int {
	return r.Lines + r.Quads
}
